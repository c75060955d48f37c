package api

import (
	"html/template"
)

// Script URLs loaded by the page shell, in load order
const (
	JQueryScriptURL      = "https://code.jquery.com/jquery-3.6.0.min.js"
	CanvasJSScriptURL    = "https://canvasjs.com/assets/script/canvasjs.min.js"
	PriceWidgetScriptURL = "https://spoonacular.com/application/frontend/js/priceBreakdownWidget.js"
)

const shellTemplateName = "price_estimator.html"

const shellHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Price Estimator</title>
    <script src="{{ .JQuery }}"></script>
    <script src="{{ .CanvasJS }}"></script>
    <script src="{{ .PriceWidget }}"></script>
</head>
<body>
{{ .Fragment }}
</body>
</html>
`

var shellTemplate = template.Must(template.New(shellTemplateName).Parse(shellHTML))

// shellData feeds the page shell. Fragment is trusted upstream markup and is embedded unescaped.
type shellData struct {
	JQuery      string
	CanvasJS    string
	PriceWidget string
	Fragment    template.HTML
}

func newShellData(fragment string) shellData {
	return shellData{
		JQuery:      JQueryScriptURL,
		CanvasJS:    CanvasJSScriptURL,
		PriceWidget: PriceWidgetScriptURL,
		Fragment:    template.HTML(fragment), // #nosec G203 -- fragment is passed through verbatim
	}
}
