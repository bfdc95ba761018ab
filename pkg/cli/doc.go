/*
Copyright © 2026 verkit
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the semver command line interface: parsing,
// comparing, sorting, validating, and bumping semantic versions, with
// results rendered through the serializer package in JSON, YAML, or
// table format.
package cli
