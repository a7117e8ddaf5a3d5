// Package systems implements the characteristic-function plug-ins the
// catalog dispatches to. Each file implements one system family: its
// f(s;p), and, where applicable, its line-denominator bound and region-
// fraction generators (§4.2, §6.3 of the design).
//
// These are the only place in the repository where a concrete
// characteristic function is written down; the search engines (maximize,
// minimize, winding, lineengine, regionengine) never special-case a system
// by name.
package systems
