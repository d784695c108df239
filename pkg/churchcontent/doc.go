// Package churchcontent provides the content layer for a church marketing
// site: singleton content documents (hero, about, contact, ministries page),
// collection entities (sermons, events, ministries, leadership, requests),
// the image lifecycle that accompanies photo-bearing content, and a one-shot
// seeding routine.
//
// It exposes a single Service interface backed by pluggable document stores
// (memory, Firestore, Postgres) and blob stores (memory, filesystem, S3)
// provided under subpackages. The blob store is optional; a service built
// without one rejects uploads and skips orphan cleanup.
//
// Error Model
//
// Operations return explicit errors rather than swallowing failures.
// Sentinels distinguish "store not configured" (ErrNotConfigured) from
// "document does not exist" (ErrDocumentNotFound), so callers can choose to
// degrade to defaults without losing the cause. Singleton reads always return
// a usable value: the stored document when present, the kind's default
// otherwise, together with any store error.
package churchcontent
