// Package profile loads and validates DNS filtering profile documents.
//
// A profile is a YAML document bundling blocklist subscriptions, whitelist
// categories, and regex blocking rules into a named filtering policy. The
// stock catalog ships standard, family, and paranoid profiles; operators can
// add their own documents to the profile directory.
//
// Loading is strict: a reconciliation run never starts from a document that
// failed to parse or validate. Catalog listing is lenient: broken documents
// are reported as broken entries so the rest of the catalog stays visible.
package profile
