// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package cloud ranks counted words and scales them into tag cloud font sizes.

Selection happens in two stages. SelectTopN orders every entry by count
descending (word ascending on ties) and keeps the first N by position, so
words tied with the last kept count but ranked below N are dropped. The
first and last kept counts bound the font scaling:

	sel, err := cloud.SelectTopN(freqs, 25)
	if errors.Is(err, cloud.ErrInvalidSelectionSize) {
		// ask for another size
	}
	words := cloud.RenderAlphabetical(sel)

RenderAlphabetical then orders the selection by word and maps each count
linearly onto [11, 48] with integer arithmetic:

	ratio    = (max - min + maxFont - minFont) / (maxFont - minFont)
	fontSize = (count - min) / ratio + minFont

A one word selection always renders at the minimum font size.
*/
package cloud
