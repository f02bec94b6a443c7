package window

import "launchapp/internal/lifecycle"

func stateOf(s string) lifecycle.State {
	return lifecycle.State(s)
}
