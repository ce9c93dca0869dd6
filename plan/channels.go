package plan

type channel struct {
	index int
	field string
}

// Peripheral channels by the name used in plan files.
var channels = map[string]channel{
	"dfll48":   {0, "Dfll48"},
	"dpll0":    {1, "Dpll0"},
	"dpll1":    {2, "Dpll1"},
	"slow":     {3, "Slow"},
	"eic":      {4, "Eic"},
	"freqmmsr": {5, "FreqmMsr"},
	"freqmref": {6, "FreqmRef"},
	"sercom0":  {7, "Sercom0"},
	"sercom1":  {8, "Sercom1"},
	"tc0tc1":   {9, "Tc0Tc1"},
	"usb":      {10, "Usb"},
	"evsys0":   {11, "Evsys0"},
	"evsys1":   {12, "Evsys1"},
	"evsys2":   {13, "Evsys2"},
	"evsys3":   {14, "Evsys3"},
	"evsys4":   {15, "Evsys4"},
	"evsys5":   {16, "Evsys5"},
	"evsys6":   {17, "Evsys6"},
	"evsys7":   {18, "Evsys7"},
	"evsys8":   {19, "Evsys8"},
	"evsys9":   {20, "Evsys9"},
	"evsys10":  {21, "Evsys10"},
	"evsys11":  {22, "Evsys11"},
	"sercom2":  {23, "Sercom2"},
	"sercom3":  {24, "Sercom3"},
	"tcc0tcc1": {25, "Tcc0Tcc1"},
	"tc2tc3":   {26, "Tc2Tc3"},
	"can0":     {27, "Can0"},
	"can1":     {28, "Can1"},
	"tcc2tcc3": {29, "Tcc2Tcc3"},
	"tc4tc5":   {30, "Tc4Tc5"},
	"pdec":     {31, "Pdec"},
	"ac":       {32, "Ac"},
	"ccl":      {33, "Ccl"},
	"sercom4":  {34, "Sercom4"},
	"sercom5":  {35, "Sercom5"},
	"sercom6":  {36, "Sercom6"},
	"sercom7":  {37, "Sercom7"},
	"tcc4":     {38, "Tcc4"},
	"tc6tc7":   {39, "Tc6Tc7"},
	"adc0":     {40, "Adc0"},
	"adc1":     {41, "Adc1"},
	"dac":      {42, "Dac"},
	"i2s0":     {43, "I2s0"},
	"i2s1":     {44, "I2s1"},
	"sdhc0":    {45, "Sdhc0"},
	"sdhc1":    {46, "Sdhc1"},
	"cm4trace": {47, "Cm4Trace"},
}
