// Package episode holds the domain view of a podcast episode page.
//
// Episodes live in the external workspace; this package only models the
// read-only projection the dashboard renders (title, number, status,
// topic, guest, dates), the label syntax used to reference an episode by
// hand ("#8 Opera"), status reference values, the default production
// checklist, and the quick status report.
//
// Nothing here talks to the network. Conversions between workspace
// property payloads and these types live in the notion package.
package episode
