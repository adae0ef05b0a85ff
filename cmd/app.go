package main

import (
	"os"

	"github.com/UnendingLoop/MiniGrep/internal/appmode"
)

func main() {
	// код выхода: 0 - успех, 2 - неверные аргументы, 1 - ошибка чтения/записи
	os.Exit(appmode.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
