// Package uninstallpart implements the Uninstall Part use case.
//
// Uninstalling the frame itself discards the whole assembly. Uninstalling a part clears the
// first connection point holding it on a copy of the current frame. Ids that are not installed
// anywhere are ignored.
package uninstallpart
