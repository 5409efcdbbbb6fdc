// Package ocdsindex crawls static, multi-language HTML documentation builds
// and turns each page section into a search-indexable record with a stable
// public URL, then keeps a search index in sync as documentation is
// republished or retired.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, fs/).
package ocdsindex
