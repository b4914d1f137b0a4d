// Copyright 2025 Vietphone Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package local

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/go-crypt/x/blake2b"

	"github.com/vietphone/phonerec/ai"
)

// Dimension is the length of every vector produced by the embedder.
const Dimension = 384

// Embedder produces deterministic pseudo-embeddings without any external
// service. The vector is derived purely from a content hash, so identical
// texts always embed identically; similar texts do NOT embed similarly.
// That makes it suitable for exact-content retrieval and tests, not for
// true semantic search.
type Embedder struct{}

// NewEmbedder creates the offline embedder.
func NewEmbedder() *Embedder {
	return &Embedder{}
}

var _ ai.Embedder = (*Embedder)(nil)

// EmbedText returns the pseudo-embedding of text. It never fails and
// ignores the context; the signature matches ai.Embedder so engines can
// swap in a real service.
func (e *Embedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	return pseudoEmbed(text), nil
}

// EmbedTexts embeds each text independently, preserving input order.
func (e *Embedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = pseudoEmbed(text)
	}
	return out, nil
}

// pseudoEmbed derives a unit vector from the text's 64-bit hash. Each
// component is a sine of the evolving hash state, scaled to [-0.5, 0.5]
// before normalization. Signed overflow in the state update is intentional.
func pseudoEmbed(text string) []float32 {
	state := contentHash(text)

	vector := make([]float32, Dimension)
	for i := 0; i < Dimension; i++ {
		vector[i] = float32(math.Sin(float64(state)*float64(i+1)) * 0.5)
		state = state*31 + int64(i)
	}
	return normalize(vector)
}

func contentHash(text string) int64 {
	h, _ := blake2b.New(8, nil)
	h.Write([]byte(text))
	return int64(binary.LittleEndian.Uint64(h.Sum(nil)))
}

// normalize scales the vector to unit length. A zero vector is returned
// unchanged rather than dividing by zero.
func normalize(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}
	norm := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / norm)
	}
	return vector
}
