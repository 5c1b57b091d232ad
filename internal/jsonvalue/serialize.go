package jsonvalue

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Serialize renders a Value as minimal JSON (no insignificant
// whitespace) with object keys in stable, sorted order, per spec §4.2.
func Serialize(v Value) []byte {
	var buf strings.Builder
	writeValue(&buf, v)
	return []byte(buf.String())
}

func writeValue(buf *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		writeNumber(buf, v.n)
	case KindString:
		writeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeValue(buf, item)
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		keys := v.Keys()
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			writeValue(buf, v.obj[k])
		}
		buf.WriteByte('}')
	}
}

func writeNumber(buf *strings.Builder, n float64) {
	// Registered timestamp claims are always integral; render them
	// without a trailing ".0" for interoperability with other JWT
	// implementations that expect an integer NumericDate.
	if n == float64(int64(n)) {
		buf.WriteString(strconv.FormatInt(int64(n), 10))
		return
	}
	buf.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
}

func writeString(buf *strings.Builder, s string) {
	// encoding/json's string escaping is part of the vetted JSON codec;
	// reuse it rather than hand-rolling escape rules.
	b, _ := json.Marshal(s)
	buf.Write(b)
}
