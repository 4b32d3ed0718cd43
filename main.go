package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Mjoel54/klein-portfolio/cmd"
)

func main() {
	cmd.Execute()
}
