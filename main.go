package main

import (
	"suggestbot/bot"
)

func main() {
	bot.Start()
}
