package ui

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BannerInfo is shown in the console banner.
type BannerInfo struct {
	Version      string
	CommandCount int
	Groups       []string
	HelpCommand  string
	Catalog      string
}

// Banner renders the welcome box shown when the console starts.
func Banner(info BannerInfo) string {
	borderColor := lipgloss.Color("#D97757")
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(72)

	username := "User"
	if currentUser, _ := user.Current(); currentUser != nil {
		// Split full name or use username
		if names := strings.Fields(currentUser.Name); len(names) > 0 {
			username = names[0]
		} else if currentUser.Username != "" {
			username = currentUser.Username
		}
	}

	welcomeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Align(lipgloss.Center).
		Width(28)

	groups := "no groups"
	if len(info.Groups) > 0 {
		groups = strings.Join(info.Groups, ", ")
	}
	catalog := info.Catalog
	if catalog == "" {
		catalog = "user + project catalogs"
	} else if len(catalog) > 28 {
		catalog = ".../" + filepath.Base(catalog)
	}

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7D7D")).
		Align(lipgloss.Center).
		Width(28)

	leftCol := lipgloss.JoinVertical(
		lipgloss.Center,
		welcomeStyle.Render(fmt.Sprintf("Welcome back %s!", username)),
		infoStyle.MarginTop(1).Render(fmt.Sprintf("%d commands\n%s", info.CommandCount, catalog)),
	)

	tipsHeader := lipgloss.NewStyle().Foreground(borderColor).Render("Tips for getting started")
	tips := "Type / to browse commands"
	if info.HelpCommand != "" {
		tips += "\nSend " + info.HelpCommand + " for the help index"
	}
	groupsHeader := lipgloss.NewStyle().Foreground(borderColor).MarginTop(1).Render("Your groups")

	rightCol := lipgloss.JoinVertical(
		lipgloss.Left,
		tipsHeader,
		tips,
		groupsHeader,
		groups,
	)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftCol,
		lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(borderColor).Margin(0, 2).Padding(0, 2).Render(rightCol),
	)

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D7D7D")).
		MarginLeft(2).
		Render("botcmd " + info.Version)
	return title + "\n" + borderStyle.Render(content)
}

// DrawBanner prints the banner to stdout.
func (u *UI) DrawBanner(info BannerInfo) {
	fmt.Fprintln(os.Stdout, Banner(info))
}
