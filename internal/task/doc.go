// Package task parses, sorts, and updates the task store file.
//
// The store file (.today_tasks.json by default) is a JSON array of
// tasks:
//
//	[
//	  {
//	    "id": 1,
//	    "text": "Buy milk",
//	    "due": "14:30",
//	    "done": false,
//	    "created_at": "2024-01-01T09:15:00"
//	  }
//	]
//
// Ids are assigned as one past the highest id in use, so they stay
// unique while the list lives; removing the highest task frees its id
// for the next add. The due field is a free-form clock time and may be
// null.
//
// # Due Times
//
// Due strings are matched case-insensitively against three layouts:
//
//   - "15:04"  24-hour, e.g. 14:30
//   - "3:04PM" 12-hour with minutes, e.g. 2:30pm
//   - "3PM"    bare 12-hour, e.g. 2pm
//
// A parseable due time sorts by its minute of the day. Strings that
// match no layout rank after every real time, and tasks without a due
// time rank last of all.
//
// # File Format
//
// When writing the store file, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Stable key ordering (via JSON marshaling)
//
// A missing or corrupt store file loads as an empty list so the tool
// always starts; the damaged content is overwritten on the next save.
package task
