// Package bootstrap turns a materialized directory into a git repository with
// a single dev branch and pushes it to origin.
//
// The work runs as a fixed sequence of stages. Each stage runs once. Only the
// two push stages may fail without stopping the sequence; their outcome is
// recorded in the Report.
package bootstrap
