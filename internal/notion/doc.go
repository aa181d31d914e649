// Package notion provides access to the workspace API backing the
// episode database.
//
// Client is a thin HTTP wrapper over the three operations the dashboard
// consumes: database query (cursor-paginated), page property update, and
// block child append. Workspace layers the episode domain on top of it:
// it caches the database schema, projects pages into episode.Episode
// values, and shapes property writes according to each field's declared
// type so callers never handle raw property payloads.
//
// API failures carry the workspace error code and message verbatim via
// APIError; nothing is retried.
package notion
