// Package app contains the core application logic. It defines the App struct,
// its configuration, and the two things an App can do: run one interactive
// search against the reference dataset, or compare both kernels across a
// grid. It is decoupled from any specific entrypoint.
package app
