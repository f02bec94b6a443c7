// Package config provides configuration management for launchapp.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/launchapp/config.yaml)
//  3. Project configuration (./.launchapp/config.yaml)
//
// # Configuration Structure
//
//	globalSettings:
//	  windowTitle: "Launch App 2.0"
//	  logLevel: info
//
//	packagePaths:
//	  - "${HOME}/packages"
//	  - /studio/packages
//
//	projects:
//	  - name: alita
//	    versions: ["1.1.0", "1.0.0"]
//	    applications:
//	      - name: maya
//	        label: Autodesk Maya
//	        command: ["maya", "-proj", "."]
//	        requires: ["maya-2020", "alita"]
//	        env:
//	          MAYA_DISABLE_CIP: "1"
//
// Projects with the same name in a later layer replace the earlier
// definition. Package paths are replaced as a whole. ${VAR} references and a
// leading ~ in package paths are expanded after merging.
package config
