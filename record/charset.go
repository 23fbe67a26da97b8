package record

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/gogpu/emf"
)

// codePages maps font character sets to their Windows code pages.
var codePages = map[emf.Charset]encoding.Encoding{
	emf.CharsetANSI:        charmap.Windows1252,
	emf.CharsetDefault:     charmap.Windows1252,
	emf.CharsetSymbol:      charmap.ISO8859_1,
	emf.CharsetShiftJIS:    japanese.ShiftJIS,
	emf.CharsetHangul:      korean.EUCKR,
	emf.CharsetGB2312:      simplifiedchinese.GBK,
	emf.CharsetChineseBig5: traditionalchinese.Big5,
	emf.CharsetGreek:       charmap.Windows1253,
	emf.CharsetTurkish:     charmap.Windows1254,
	emf.CharsetVietnamese:  charmap.Windows1258,
	emf.CharsetHebrew:      charmap.Windows1255,
	emf.CharsetArabic:      charmap.Windows1256,
	emf.CharsetBaltic:      charmap.Windows1257,
	emf.CharsetRussian:     charmap.Windows1251,
	emf.CharsetThai:        charmap.Windows874,
	emf.CharsetEastEurope:  charmap.Windows1250,
	emf.CharsetOEM:         charmap.CodePage437,
}

// DecodeANSI decodes 8-bit text in the code page of cs. Unknown
// character sets fall back to Windows-1252.
func DecodeANSI(raw []byte, cs emf.Charset) (string, error) {
	enc, ok := codePages[cs]
	if !ok {
		enc = charmap.Windows1252
	}
	b, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
