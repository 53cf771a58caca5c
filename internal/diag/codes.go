package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0
	// Сканер
	ScanInfo            Code = 1000
	ScanTokenTooLong    Code = 1001
	ScanMalformedNumber Code = 1002
	ScanInvalidUTF8     Code = 1003

	// Импорт/экспорт статистики
	ExportInfo      Code = 2000
	ExportBadRecord Code = 2001
	ExportBadSchema Code = 2002
	ExportPositions Code = 2003

	// Ввод-вывод
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
	IOFileTooLarge  Code = 4002
	IOReadError     Code = 4003

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		ScanInfo:            "Scanner information",
		ScanTokenTooLong:    "Token exceeds the maximum length",
		ScanMalformedNumber: "Malformed number",
		ScanInvalidUTF8:     "Invalid UTF-8 sequence",
		ExportInfo:          "Export information",
		ExportBadRecord:     "Malformed export record",
		ExportBadSchema:     "Unsupported snapshot schema",
		ExportPositions:     "Positions are not strictly increasing",
		IOInfo:              "I/O information",
		IOLoadFileError:     "I/O load file error",
		IOFileTooLarge:      "Input file is too large",
		IOReadError:         "Read error",
		ObsInfo:             "Observability information",
		ObsTimings:          "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("EXP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
