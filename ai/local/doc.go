// Package local provides a deterministic offline embedder. It needs no
// network or model runtime, which keeps the default chatbot configuration
// self-contained.
package local
