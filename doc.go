package client

/*
This module is a client library for TinyKV-style distributed key/value stores. It lowers high-level,
type-safe domain values (keys, key ranges, timestamps, mutations) into the kvrpcpb protocol messages
that implement the store's Percolator-flavoured two phase commit protocol, including the pessimistic
locking extension.

The module deliberately stops at message construction. Region routing, retries, the RPC transport,
and the timestamp oracle client are the responsibility of the surrounding transaction orchestrator;
nothing here performs I/O or keeps state between calls.

The module is organized into the following packages:

* `kv`: the key, key/value pair, and bound range domain types.
* `oracle`: the logical timestamp issued by the placement driver's timestamp oracle, and its
  composition into the single version number used on the wire.
* `txnkv`: one constructor per transactional protocol operation (get, scan, prewrite, commit,
  rollback, pessimistic lock/rollback, lock resolution, heart beat, lock scanning, range deletion),
  plus the low-level wire constructors in `txnkv/requests`.
* `rawkv`: constructors for the raw, non-transactional API the store exposes alongside the
  transactional one.
* `config`: TOML-backed client configuration.
*/
