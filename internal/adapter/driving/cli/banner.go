package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/diillson/pos-sales-dashboard-go/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(brand string) {
	banner := `
        /$$$$$$$   /$$$$$$   /$$$$$$         /$$$$$$            /$$                    
       | $$__  $$ /$$__  $$ /$$__  $$       /$$__  $$          | $$                    
       | $$  \ $$| $$  \ $$| $$  \__/      | $$  \__/  /$$$$$$ | $$  /$$$$$$   /$$$$$$$
       | $$$$$$$/| $$  | $$|  $$$$$$       |  $$$$$$  |____  $$| $$ /$$__  $$ /$$_____/
       | $$____/ | $$  | $$ \____  $$       \____  $$  /$$$$$$$| $$| $$$$$$$$|  $$$$$$ 
       | $$      | $$  | $$ /$$  \ $$       /$$  \ $$ /$$__  $$| $$| $$_____/ \____  $$
       | $$      |  $$$$$$/|  $$$$$$/      |  $$$$$$/|  $$$$$$$| $$|  $$$$$$$ /$$$$$$$/
       |__/       \______/  \______/        \______/  \_______/|__/ \_______/|_______/ 
        `
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(green(banner))

	// Obtem a string formatada da versão através do pacote version
	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("%s Sales Dashboard CLI (v%s)", strings.TrimSpace(brand), formattedVersion)))
}
