package auth

// Package auth provides host-backed authentication for the sysidd API.
//
// Login verifies against the host shadow database; authorization binds
// to host privileges (membership in a sudo-capable group makes a user
// an admin). Sessions are HS256 JWTs carried in a cookie or bearer
// header.
