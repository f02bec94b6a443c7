package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var requestPattern = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)(?:-([0-9][A-Za-z0-9._]*))?$`)

// parseRequest splits "maya-2020" into ("maya", "2020"). A request without a
// version asks for the latest one found.
func parseRequest(req string) (name, version string, err error) {
	m := requestPattern.FindStringSubmatch(strings.TrimSpace(req))
	if m == nil {
		return "", "", fmt.Errorf("%w: %q", ErrMalformedRequest, req)
	}
	return m[1], m[2], nil
}

// listVersions returns the version directories of name under root, oldest
// first.
func listVersions(root, name string) []string {
	entries, err := os.ReadDir(filepath.Join(root, name))
	if err != nil {
		return nil
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	sortVersions(versions)
	return versions
}

// sortVersions orders versions semantically where possible and falls back
// to a plain string comparison for anything semver cannot parse.
func sortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, erri := semver.NewVersion(versions[i])
		vj, errj := semver.NewVersion(versions[j])
		if erri == nil && errj == nil {
			return vi.LessThan(vj)
		}
		return versions[i] < versions[j]
	})
}

// findPackage looks name up in every package path. The first path holding
// the package wins.
func findPackage(paths []string, name, version string) Package {
	pkg := Package{Name: name, Version: version}
	for _, root := range paths {
		versions := listVersions(root, name)
		if len(versions) == 0 {
			continue
		}
		pkg.Versions = versions
		want := version
		if want == "" {
			want = versions[len(versions)-1]
		}
		for _, v := range versions {
			if v == want {
				pkg.Version = v
				pkg.Root = filepath.Join(root, name, v)
				pkg.Found = true
				return pkg
			}
		}
	}
	return pkg
}

// resolveEnvironment builds the variables an application is launched with.
func resolveEnvironment(basePath string, project, projectVersion string, pkgs []Package, extra map[string]string) []EnvVar {
	vars := map[string]string{
		"LAUNCHAPP_PROJECT": project,
	}
	if projectVersion != "" {
		vars["LAUNCHAPP_PROJECT_VERSION"] = projectVersion
	}

	var bins []string
	for _, p := range pkgs {
		if !p.Found || p.Disabled {
			continue
		}
		key := strings.ToUpper(p.Name)
		vars[key+"_ROOT"] = p.Root
		vars[key+"_VERSION"] = p.Version
		bins = append(bins, filepath.Join(p.Root, "bin"))
	}
	if basePath != "" {
		bins = append(bins, basePath)
	}
	vars["PATH"] = strings.Join(bins, string(os.PathListSeparator))

	for k, v := range extra {
		vars[k] = os.Expand(v, func(name string) string {
			if resolved, ok := vars[name]; ok {
				return resolved
			}
			return os.Getenv(name)
		})
	}

	out := make([]EnvVar, 0, len(vars))
	for k, v := range vars {
		out = append(out, EnvVar{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
