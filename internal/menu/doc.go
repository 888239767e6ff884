// Package menu holds the immutable menu hierarchy built from
// configuration and the navigation cursor over it. Resolution turns an
// observed key press into an action: run a command, descend into a
// sub-menu, or quit.
package menu
