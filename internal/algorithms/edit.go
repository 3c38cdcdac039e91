package algorithms

import (
	"github.com/standardbeagle/textsim/internal/alloc"
	"github.com/standardbeagle/textsim/internal/config"
	simerrors "github.com/standardbeagle/textsim/internal/errors"
	"github.com/standardbeagle/textsim/internal/unicode"
)

const hammingLengthMessage = "hamming distance requires equal-length strings"

// rowSlab pools the DP rows shared by every edit-kernel invocation.
var rowSlab = alloc.NewSlab[uint32]()

func bytesEqual(a, b byte, caseSensitive bool) bool {
	if caseSensitive {
		return a == b
	}
	return a|0x20 == b|0x20
}

// LevenshteinDistance is the classical three-operation edit distance over
// code points, single-row DP with the shorter string on the inner axis.
// With a configured threshold k the banded variant runs instead and
// saturates at k+1.
func LevenshteinDistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	if s1.IsEmpty() {
		return uint32(s2.Len()), nil
	}
	if s2.IsEmpty() {
		return uint32(s1.Len()), nil
	}
	if s1.Equal(s2) {
		return 0, nil
	}

	if cfg.Threshold != nil {
		return levenshteinBanded(s1.Runes(), s2.Runes(), uint32(*cfg.Threshold), cfg.CaseSensitiveCompare()), nil
	}

	if unicode.IsASCII(s1.UTF8()) && unicode.IsASCII(s2.UTF8()) {
		return levenshteinASCII(s1.UTF8(), s2.UTF8(), cfg.CaseSensitiveCompare()), nil
	}

	return levenshteinRunes(s1.Runes(), s2.Runes(), cfg.CaseSensitiveCompare()), nil
}

// LevenshteinSimilarity is 1 − d/max(len); empty against empty is 1.
func LevenshteinSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := LevenshteinDistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return editSimilarity(d, max(s1.Len(), s2.Len())), nil
}

func levenshteinRunes(r1, r2 []rune, caseSensitive bool) uint32 {
	if len(r1) > len(r2) {
		r1, r2 = r2, r1
	}

	row := rowSlab.GetZeroed(len(r1) + 1)
	defer rowSlab.Put(row)
	for i := range row {
		row[i] = uint32(i)
	}

	for j := 1; j <= len(r2); j++ {
		prevDiag := row[0]
		row[0] = uint32(j)
		for i := 1; i <= len(r1); i++ {
			prevCur := row[i]
			if unicode.RunesEqual(r1[i-1], r2[j-1], caseSensitive) {
				row[i] = prevDiag
			} else {
				row[i] = 1 + min(row[i], row[i-1], prevDiag)
			}
			prevDiag = prevCur
		}
	}

	return row[len(r1)]
}

// levenshteinASCII runs the same recurrence over raw bytes. For ASCII
// input byte positions and code-point positions coincide, so the result is
// identical to the rune path.
func levenshteinASCII(s1, s2 string, caseSensitive bool) uint32 {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}

	row := rowSlab.GetZeroed(len(s1) + 1)
	defer rowSlab.Put(row)
	for i := range row {
		row[i] = uint32(i)
	}

	for j := 1; j <= len(s2); j++ {
		prevDiag := row[0]
		row[0] = uint32(j)
		for i := 1; i <= len(s1); i++ {
			prevCur := row[i]
			if bytesEqual(s1[i-1], s2[j-1], caseSensitive) {
				row[i] = prevDiag
			} else {
				row[i] = 1 + min(row[i], row[i-1], prevDiag)
			}
			prevDiag = prevCur
		}
	}

	return row[len(s1)]
}

// levenshteinBanded only fills cells within maxDistance of the diagonal and
// reports maxDistance+1 as soon as the true distance cannot be ≤
// maxDistance.
func levenshteinBanded(r1, r2 []rune, maxDistance uint32, caseSensitive bool) uint32 {
	len1, len2 := len(r1), len(r2)

	diff := len1 - len2
	if diff < 0 {
		diff = -diff
	}
	if uint32(diff) > maxDistance {
		return maxDistance + 1
	}

	bandWidth := int(maxDistance) + 1
	rowLen := 2*bandWidth + 1
	sentinel := maxDistance + 1

	cur := rowSlab.GetZeroed(rowLen)
	prev := rowSlab.GetZeroed(rowLen)
	defer rowSlab.Put(cur)
	defer rowSlab.Put(prev)

	for i := range prev {
		prev[i] = sentinel
	}
	for i := 0; i <= min(bandWidth, len1); i++ {
		prev[bandWidth+i] = uint32(i)
	}

	for j := 1; j <= len2; j++ {
		for i := range cur {
			cur[i] = sentinel
		}

		minI := 1
		if j > bandWidth {
			minI = j - bandWidth
		}
		maxI := min(len1, j+bandWidth)

		if j <= bandWidth {
			cur[bandWidth-j] = uint32(j)
		}

		foundValid := false
		for i := minI; i <= maxI; i++ {
			idx := bandWidth + i - j

			if unicode.RunesEqual(r1[i-1], r2[j-1], caseSensitive) {
				cur[idx] = prev[idx]
			} else {
				cost := sentinel
				if idx > 0 {
					cost = min(cost, cur[idx-1]+1) // insertion
				}
				if idx < rowLen-1 {
					cost = min(cost, prev[idx+1]+1) // deletion
				}
				cost = min(cost, prev[idx]+1) // substitution
				cur[idx] = cost
			}

			if cur[idx] <= maxDistance {
				foundValid = true
			}
		}

		if !foundValid {
			return sentinel
		}

		cur, prev = prev, cur
	}

	result := prev[bandWidth+len1-len2]
	return min(result, sentinel)
}

// OSADistance is Damerau-Levenshtein restricted to non-overlapping adjacent
// transpositions (optimal string alignment), full-matrix DP.
func OSADistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	if s1.IsEmpty() {
		return uint32(s2.Len()), nil
	}
	if s2.IsEmpty() {
		return uint32(s1.Len()), nil
	}
	if s1.Equal(s2) {
		return 0, nil
	}

	r1, r2 := s1.Runes(), s2.Runes()
	len1, len2 := len(r1), len(r2)
	caseSensitive := cfg.CaseSensitiveCompare()

	stride := len2 + 1
	matrix := rowSlab.GetZeroed((len1 + 1) * stride)
	defer rowSlab.Put(matrix)

	for i := 0; i <= len1; i++ {
		matrix[i*stride] = uint32(i)
	}
	for j := 0; j <= len2; j++ {
		matrix[j] = uint32(j)
	}

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			var cost uint32
			if !unicode.RunesEqual(r1[i-1], r2[j-1], caseSensitive) {
				cost = 1
			}

			cell := min(
				matrix[(i-1)*stride+j]+1,      // deletion
				matrix[i*stride+j-1]+1,        // insertion
				matrix[(i-1)*stride+j-1]+cost, // substitution
			)

			if i > 1 && j > 1 &&
				unicode.RunesEqual(r1[i-1], r2[j-2], caseSensitive) &&
				unicode.RunesEqual(r1[i-2], r2[j-1], caseSensitive) {
				cell = min(cell, matrix[(i-2)*stride+j-2]+cost)
			}

			matrix[i*stride+j] = cell
		}
	}

	return matrix[len1*stride+len2], nil
}

// OSASimilarity normalizes the OSA distance against the longer input.
func OSASimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := OSADistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return editSimilarity(d, max(s1.Len(), s2.Len())), nil
}

// HammingDistance counts mismatched code points. Inputs must be the same
// code-point length.
func HammingDistance(s1, s2 unicode.Text, cfg config.Config) (uint32, error) {
	if s1.Len() != s2.Len() {
		return 0, simerrors.NewInvalidInput(hammingLengthMessage)
	}
	if s1.Equal(s2) {
		return 0, nil
	}

	caseSensitive := cfg.CaseSensitiveCompare()

	if unicode.IsASCII(s1.UTF8()) && unicode.IsASCII(s2.UTF8()) {
		b1, b2 := s1.UTF8(), s2.UTF8()
		var distance uint32
		for i := 0; i < len(b1); i++ {
			if !bytesEqual(b1[i], b2[i], caseSensitive) {
				distance++
			}
		}
		return distance, nil
	}

	r1, r2 := s1.Runes(), s2.Runes()
	var distance uint32
	for i := range r1 {
		if !unicode.RunesEqual(r1[i], r2[i], caseSensitive) {
			distance++
		}
	}
	return distance, nil
}

// HammingSimilarity is 1 − d/n; zero-length inputs are identical.
func HammingSimilarity(s1, s2 unicode.Text, cfg config.Config) (float64, error) {
	d, err := HammingDistance(s1, s2, cfg)
	if err != nil {
		return 0, err
	}
	return editSimilarity(d, s1.Len()), nil
}
