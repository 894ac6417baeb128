// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides record-level access to the three collections: items,
votes and comments.

Each collection supports point lookup, point insert/replace/delete and a
small set of filtered scans. There are no cross-collection transactions and
no foreign keys: the write protocol in the handlers package owns referential
cleanup, and this layer stays a thin accessor over *sql.DB.

Point lookups return sql.ErrNoRows when the record is absent; callers branch
on that rather than on a sentinel value.

ReplaceItem is a full-row, last-write-wins overwrite. Two concurrent
read-modify-write cycles on the same item's counters can lose one update;
that drift is an accepted property of the design, bounded below by the
zero floor the handlers apply.

The schema runs unchanged on sqlite (modernc.org/sqlite) and postgres
(lib/pq); queries use $n placeholders, which both drivers accept.
*/
package store
