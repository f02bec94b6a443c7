// Package color turns the colour preferences of launchapp into terminal
// colours for the design system.
//
// The primaryColor and secondaryColor preferences accept the colour names
// known from desktop toolkits ("white", "steelblue", "darkorange" and so on),
// hex values ("#4682b4" or the short "#48b") and ANSI palette indices
// ("0" to "255"). Resolve converts one value; ApplyTheme resolves both and
// recolours the accent styles of the design package.
//
// # Usage Example
//
//	color.Initialize(true)
//	if err := color.ApplyTheme("white", "steelblue"); err != nil {
//	    logging.Warn("TUI", "Ignoring colour preference: %v", err)
//	}
package color
