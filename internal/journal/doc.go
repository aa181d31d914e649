// Package journal persists a diagnostic log of signed commands the
// daemon processed: when each arrived, what it asked for, and how it
// ended. The command dispatcher itself stays persistence-free; the HTTP
// layer writes a journal entry around each dispatch so chat-driven
// workflows can be audited after the fact. Entries are append-only and
// never replayed.
package journal
