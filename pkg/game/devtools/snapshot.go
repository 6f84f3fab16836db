package devtools

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"mazewright/pkg/engine/world"
	"mazewright/pkg/game/autotile"
	"mazewright/pkg/game/renderer"
	"mazewright/pkg/game/renderer/tui"
)

// themeClassColors cycles across non-default themes in sorted name
// order, matching the TUI palette cycle.
var themeClassColors = []string{
	"#4c8c48", // green
	"#3c7896", // cyan
	"#a08c3c", // yellow
	"#8c5096", // magenta
	"#964646", // red
	"#4664b4", // blue
}

// SaveSnapshotHTML saves the current generation view as an HTML file
func SaveSnapshotHTML(v *renderer.View) string {
	if v == nil || v.Maze == nil {
		return ""
	}
	maze := v.Maze

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("maze-%s.html", timestamp)

	themeClass := assignThemeClasses(maze)

	var html strings.Builder

	html.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>mazewright - Snapshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .meta {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .endpoint { color: #ffffff; font-weight: bold; }
        .default-theme { color: #888; }
        .decorated { font-weight: bold; }
`)
	for i, c := range themeClassColors {
		html.WriteString(fmt.Sprintf("        .theme-%d { color: %s; }\n", i, c))
	}
	html.WriteString(`        .placements {
            margin-top: 20px;
            color: #888;
        }
        .placement-item { color: #bb86fc; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	// Header
	html.WriteString(fmt.Sprintf(`    <div class="header">%dx%d maze</div>`+"\n", maze.Rows(), maze.Cols()))
	html.WriteString(fmt.Sprintf(`    <div class="meta">state: %s, decorations: %d, flavours: %d</div>`+"\n",
		v.State, len(v.Placements), len(v.Flavours)))

	// Map container
	html.WriteString(`    <div class="map-container">` + "\n")
	for row := 0; row < maze.Rows(); row++ {
		html.WriteString(`        <div class="map-row">`)
		for col := 0; col < maze.Cols(); col++ {
			glyph, class := cellHTMLInfo(maze, maze.CellAt(row, col), themeClass)
			html.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, glyph))
		}
		html.WriteString("</div>\n")
	}
	html.WriteString(`    </div>` + "\n")

	// Placement summary per texture
	html.WriteString(`    <div class="placements">Decorations: `)
	if len(v.Placements) == 0 {
		html.WriteString(`<span style="color:#666">(none)</span>`)
	} else {
		for i, line := range textureCounts(v) {
			if i > 0 {
				html.WriteString(", ")
			}
			html.WriteString(fmt.Sprintf(`<span class="placement-item">%s</span>`, line))
		}
	}
	html.WriteString(`</div>` + "\n")

	// Messages
	if len(v.Messages) > 0 {
		html.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range v.Messages {
			html.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", msg))
		}
		html.WriteString(`    </div>` + "\n")
	}

	html.WriteString(`</body>
</html>
`)

	os.WriteFile(filename, []byte(html.String()), 0644)
	return filename
}

// cellHTMLInfo returns the glyph and CSS class for a cell
func cellHTMLInfo(maze *world.Maze, cell *world.Cell, themeClass map[string]string) (string, string) {
	if cell == nil {
		return " ", "default-theme"
	}

	if cell.Entrance {
		return string(tui.IconEntrance), "endpoint"
	}
	if cell.Exit {
		return string(tui.IconExit), "endpoint"
	}

	glyph := string(tui.PassageGlyph(autotile.FixMask(maze, cell)))

	class := themeClass[cell.Theme]
	if class == "" {
		class = "default-theme"
	}
	if cell.FloorDecorated || cell.CeilingDecorated || len(cell.DecoratedWalls()) > 0 {
		class += " decorated"
	}
	return glyph, class
}

// assignThemeClasses gives every non-default theme a stable CSS class
func assignThemeClasses(maze *world.Maze) map[string]string {
	present := make(map[string]bool)
	maze.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.Theme != world.DefaultTheme {
			present[cell.Theme] = true
		}
	})

	names := make([]string, 0, len(present))
	for name := range present {
		names = append(names, name)
	}
	sort.Strings(names)

	classes := make(map[string]string, len(names))
	for i, name := range names {
		classes[name] = fmt.Sprintf("theme-%d", i%len(themeClassColors))
	}
	return classes
}

// textureCounts summarizes accepted placements per texture in sorted order
func textureCounts(v *renderer.View) []string {
	counts := make(map[string]int)
	for _, p := range v.Placements {
		counts[p.Texture]++
	}
	for _, f := range v.Flavours {
		counts[f.Texture]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s x%d", name, counts[name]))
	}
	return lines
}
