// Package fuzztests houses Go fuzz harnesses for the streaming scanner and
// the export parsers. Its goal is to smoke test robustness and guard against
// panics, buffer-size dependent results and broken round trips on arbitrary
// inputs.
//
// Назначение: прогонять произвольные байты через scanner и export.Parse*.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/scanner, internal/export, internal/stats,
// internal/testkit.

package fuzztests
