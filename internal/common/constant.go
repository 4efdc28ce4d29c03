// Package common contains shared constants and sentinel errors used across
// ragctl components.
package common

// AccessTokenStorageKey is the fixed key under which the bearer token is
// persisted in the local store. At most one token exists at a time; writing
// a new one supersedes the previous value.
const AccessTokenStorageKey = "access_token"
