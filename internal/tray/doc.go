// Package tray turns a project tree into a flat tray menu and maps clicked
// menu items back to the configuration group they stand for.
//
// # Hierarchy
//
// A menu is built from Project → EnvFile → Category → Group. Projects, env
// files and categories become disabled header items; groups become
// actionable items. A separator follows every project and a Quit item closes
// the menu.
//
// # Tokens
//
// Every actionable item carries a token of the form
//
//	tray-config:<projectID>:<envFilePath>:<groupID>
//
// Project and group ids are limited to letters, digits, '-' and '_', so they
// never contain ':'. The env-file path may contain anything (Windows drive
// letters included): it is whatever lies between the first and the last
// delimiter. Header tokens start with "label-" and the Quit item uses the
// fixed sentinel "quit-app"; neither can be mistaken for an action.
//
// # Purity
//
// BuildMenu and ResolveActivation hold no state. The caller rebuilds the tree
// for every refresh and replaces the whole menu with the result.
package tray
