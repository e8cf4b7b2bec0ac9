package helper

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StringList menerima dua bentuk dari client:
//   - array JSON: ["React", "D3.js"]
//   - string dipisah koma: "React, D3.js"
// Keduanya dinormalisasi jadi list ter-trim tanpa item kosong.
// Normalisasi terjadi di boundary decode; layer dalam cukup pakai []string.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = TrimList(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = SplitAndTrim(s)
		return nil
	}
	return fmt.Errorf("harus array of string atau string dipisah koma")
}

// SplitAndTrim memecah "a, b" → ["a","b"].
func SplitAndTrim(s string) []string {
	return TrimList(strings.Split(s, ","))
}

// TrimList men-trim tiap item dan membuang yang kosong, urutan dipertahankan.
func TrimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}
