// Package openai provides ai.Embedder and ai.AnswerGenerator
// implementations for OpenAI-compatible APIs such as Ollama, LocalAI and
// vLLM.
package openai
