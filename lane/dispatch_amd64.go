// Copyright 2025 go-netsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// The fixed-width engines only need 128-bit shuffles and compares.
	// SSE4.1 covers the byte shuffle and variable permute they use;
	// AVX2 is reported when present for callers that care.
	switch {
	case cpu.X86.HasAVX2:
		currentLevel = DispatchAVX2
		currentWidth = 16
		currentName = "avx2"
	case cpu.X86.HasSSE41:
		currentLevel = DispatchSSE4
		currentWidth = 16
		currentName = "sse4"
	default:
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
