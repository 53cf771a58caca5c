package fuzztests

import (
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
)

var textSeeds = []string{
	"",
	"hello world",
	"The cat, the hat.\nThe CAT sat!\n",
	"a\r\nb\rc\n\nd",
	"1 2 3\n4 5 6\n7 8 9",
	"12-3 -4 --5 x-1",
	"don't stop-motion — well…",
	"Привет, мир! Straße STRASSE",
	"日本語のテキスト",
	"bad \xff\xfe bytes \xe4\xbd",
	"\t  mixed\u0085spaces",
	"abc123 456def",
}

var positionSeeds = []string{
	"",
	"a 1 1\n",
	"the 3 1 3 5\ncat 2 2 6\nhat 1 4\nsat 1 7\n",
	"a 2 1\n",
	"a 1 2\nb 1 1\n",
	"x 1 99999999999\n",
	"\n\n b 1 1 \n",
}

var csvSeeds = []string{
	"word,frequency,positions\n",
	"word,frequency,positions\nthe,3,1 3 5\ncat,1,2\nhat,1,4\n",
	"word,frequency,positions\n\"a,b\",1,1\n",
	"wrong,header\n",
	"word,frequency,positions\nx,2,1\n",
}

func addSeeds(f *testing.F, seeds []string) {
	for _, s := range seeds {
		if len(s) > maxSeedBytes {
			continue
		}
		f.Add([]byte(s))
	}
}
