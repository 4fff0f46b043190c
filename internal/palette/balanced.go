package palette

// balancedHex is a 256-colour reference palette of eight 32-colour ramps,
// ordered dark to light within each ramp except the final spectrum row.
var balancedHex = [...]string{
	// Greys.
	"#000000", "#080808", "#101010", "#181818", "#202020", "#282828", "#303030", "#383838",
	"#404040", "#484848", "#505050", "#585858", "#606060", "#686868", "#707070", "#787878",
	"#808080", "#888888", "#909090", "#989898", "#A0A0A0", "#A8A8A8", "#B0B0B0", "#B8B8B8",
	"#C0C0C0", "#C8C8C8", "#D0D0D0", "#D8D8D8", "#E0E0E0", "#E8E8E8", "#F0F0F0", "#FFFFFF",
	// Indigo.
	"#1A237E", "#1F2884", "#242E8A", "#293490", "#2E3A96", "#33409C", "#3846A2", "#3D4CA8",
	"#4252AE", "#4758B4", "#4C5EBA", "#5164C0", "#566AC6", "#5B70CC", "#6076D2", "#657CD8",
	"#6A82DE", "#6F88E4", "#748EEA", "#7994F0", "#7E9AF6", "#83A0FC", "#88A6FF", "#8DACFF",
	"#92B2FF", "#97B8FF", "#9CBEFF", "#A1C4FF", "#A6CAFF", "#ABD0FF", "#B0D6FF", "#DBEFFF",
	// Teal.
	"#004D40", "#005446", "#005C4C", "#006452", "#006C58", "#00745E", "#007C64", "#00846A",
	"#008C70", "#009476", "#009C7C", "#00A482", "#00AC88", "#00B48E", "#00BC94", "#00C49A",
	"#00CCA0", "#00D4A6", "#00DCAC", "#00E4B2", "#00ECB8", "#00F4BE", "#00FCC4", "#1AFFCA",
	"#34FFD0", "#4EFFD6", "#68FFDC", "#82FFE2", "#9CFFE8", "#B6FFEE", "#D0FFF4", "#EAFFEE",
	// Red.
	"#991818", "#A01D1D", "#A72222", "#AE2727", "#B52C2C", "#BC3131", "#C33636", "#CA3B3B",
	"#D14040", "#D84545", "#DF4A4A", "#E64F4F", "#ED5454", "#F45959", "#FB5E5E", "#FF6363",
	"#FF6E6E", "#FF7979", "#FF8484", "#FF8F8F", "#FF9A9A", "#FFA5A5", "#FFB0B0", "#FFBBBB",
	"#FFC6C6", "#FFD1D1", "#FFDCDC", "#FFE7E7", "#FFEDED", "#FFF0F0", "#FFF3F3", "#FFF5F5",
	// Amber.
	"#935114", "#9A581C", "#A15F24", "#A8662C", "#AF6D34", "#B6743C", "#BD7B44", "#C4824C",
	"#CB8954", "#D2905C", "#D99764", "#E09E6C", "#E7A574", "#EEAC7C", "#F5B384", "#FCBA8C",
	"#FFC194", "#FFC89C", "#FFCFA4", "#FFD6AC", "#FFDDB4", "#FFE4BC", "#FFEBC4", "#FFF0C7",
	"#FFF2C9", "#FFF2CC", "#FFF4D1", "#FFF6D6", "#FFF8DB", "#FFFADF", "#FFFCE4", "#FFFEE9",
	// Violet.
	"#3E0A91", "#461398", "#4E1C9F", "#5625A6", "#5E2EAD", "#6637B4", "#6E40BB", "#7649C2",
	"#7E52C9", "#865BD0", "#8E64D7", "#966DDE", "#9E76E5", "#A67FEC", "#AE88F3", "#B691FA",
	"#BE9AFF", "#C6A3FF", "#CEACFF", "#D6B5FF", "#DEBEFF", "#E6C7FF", "#E2CEFF", "#EED0FF",
	"#E9D6FF", "#F6D9FF", "#F0DEFF", "#FEE2FF", "#F8E6FF", "#FFEBFF", "#FFF4FF", "#FFFDFF",
	// Cyan.
	"#005A5A", "#006161", "#006868", "#006F6F", "#007676", "#007D7D", "#008484", "#008B8B",
	"#009292", "#009999", "#00A0A0", "#00A7A7", "#00AEAE", "#00B5B5", "#00BCBC", "#00C3C3",
	"#00CACA", "#00D1D1", "#00D8D8", "#00DFDF", "#00E6E6", "#00EDED", "#00F4F4", "#00FBFB",
	"#47FFFF", "#77FFFF", "#A7FFFF", "#C7FFFF", "#D7FFFF", "#DFFFFF", "#E7FFFF", "#E0F7FA",
	// Spectrum.
	"#FF0000", "#FF3300", "#FF6600", "#FF9900", "#FFCC00", "#CCFF00", "#99FF00", "#66FF00",
	"#33FF00", "#00FF00", "#00FF33", "#00FF66", "#00FF99", "#00FFCC", "#00FFFF", "#00CCFF",
	"#0099FF", "#0066FF", "#0033FF", "#0000FF", "#3300FF", "#6600FF", "#9900FF", "#CC00FF",
	"#FF00FF", "#FF00CC", "#FF0099", "#FF0066", "#FF0033", "#FF3366", "#FF6699", "#FF99CC",
}
