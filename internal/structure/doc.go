// Package structure decodes structure descriptions and materializes them on disk.
//
// A description is an ordered mapping from path segments to entries. Each
// entry is one of three variants:
//   - EmptyFile: the key names a file that is created empty
//   - FileList: the key names a directory holding the listed empty files
//   - Subdirectory: the key names a directory described by a nested description
//
// Descriptions are read from JSON, YAML or TOML documents and never carry file
// contents.
package structure
