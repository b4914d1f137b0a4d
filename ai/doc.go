// Package ai defines the embedding and answer generation interfaces used by
// the chatbot engines, plus shared provider configuration.
//
// Three implementations exist:
//   - ai/local: a deterministic offline embedder requiring no external
//     service, used as the default.
//   - ai/openai: clients for OpenAI-compatible APIs (Ollama, LocalAI, vLLM).
//   - ai/mock: configurable test doubles.
package ai
