// Package config defines the format-agnostic model of a project file, the
// Loader interface implemented by the HCL and YAML adapters, and the
// resolution of a loaded model into concrete compile targets.
//
// A project file lists ROS packages and the action definitions each one
// owns, so a single invocation can regenerate the messages of a whole
// workspace. Actions are either listed explicitly or discovered by walking a
// package's source directory for *.action files.
package config
