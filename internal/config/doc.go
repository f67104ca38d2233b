// Package config defines configuration structures for the ubuntu-fetch CLI.
//
// Configuration can be provided via:
//   - Command-line flags
//   - Environment variables (UBUNTU_FETCH_ prefix)
//   - YAML configuration file
//
// # Structure
//
//	type Config struct {
//	    Dest        string        // destination directory or bucket URL
//	    MaxFileSize int64         // body-size ceiling in bytes
//	    Timeout     time.Duration // per-request timeout
//	    UserAgent   string
//	    ChunkSize   int           // streaming read size
//	    Verbose     bool
//	}
//
// Sizes in YAML and environment variables accept human-readable values
// such as "10MiB".
package config
