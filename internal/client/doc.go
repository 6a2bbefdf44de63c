// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the contact-keeper
// API.
//
// Each sub-command maps to one API call made through an
// [adapter.ServerAdapter]. Results are printed as indented JSON, search
// results as a table.
package client
