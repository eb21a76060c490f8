// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the generation lifecycle (resolve targets,
// compile them in parallel, optionally keep watching), decoupled from any
// specific entrypoint like a CLI.
package app
