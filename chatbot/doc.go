// Package chatbot provides conversational phone advice over the catalog.
//
// Three engines implement the Chatbot interface:
//
//   - RetrievalEngine embeds every catalog entry, retrieves the documents
//     most similar to the question and renders a Vietnamese answer from
//     topic templates.
//   - GenerativeEngine retrieves the same way but delegates the final
//     answer to an AI text generator, falling back to the templates when
//     generation fails.
//   - HeuristicEngine skips embeddings entirely: rule-based intent
//     detection, budget/brand/feature slot extraction and spec scoring
//     over the raw catalog.
//
// All engines serve questions from an immutable snapshot that UpdateData
// swaps atomically, so answering and refreshing never block each other.
package chatbot
