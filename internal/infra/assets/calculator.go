package assets

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type calculatorPage struct {
	Title        string
	ValuePromise string
	Inputs       []calculatorPageInput
	Formula      template.JS
	OutputLabel  string
	OutputUnit   string
}

type calculatorPageInput struct {
	Name        string
	JSName      template.JS
	Label       string
	Type        string
	Placeholder string
}

func (r *Renderer) renderCalculatorHTML(magnet *entity.LeadMagnet) ([]byte, error) {
	calc := magnet.Content.Calculator
	if calc == nil {
		return nil, fmt.Errorf("lead magnet %d sem conteúdo de calculadora", magnet.ID)
	}

	outputLabel := calc.Output.Label
	if outputLabel == "" {
		outputLabel = "Result"
	}

	inputs := make([]calculatorPageInput, 0, len(calc.Inputs))
	for _, in := range calc.Inputs {
		inputs = append(inputs, calculatorPageInput{
			Name:        in.Name,
			JSName:      template.JS(jsIdentifier(in.Name)),
			Label:       in.Label,
			Type:        in.Type,
			Placeholder: in.Placeholder,
		})
	}

	page := calculatorPage{
		Title:        magnet.Title,
		ValuePromise: magnet.ValuePromise,
		Inputs:       inputs,
		Formula:      template.JS(calculatorFormula(calc.Formula)),
		OutputLabel:  outputLabel,
		OutputUnit:   calc.Output.Unit,
	}

	var buf bytes.Buffer
	if err := calculatorTmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("erro ao gerar calculadora HTML: %w", err)
	}
	return buf.Bytes(), nil
}

// calculatorFormula prepara a fórmula para virar a expressão JS do
// cálculo. Fórmulas vazias degradam para zero em vez de quebrar a página.
func calculatorFormula(formula string) string {
	expr := strings.TrimSpace(strings.ReplaceAll(formula, "=", ""))
	if expr == "" {
		return "0"
	}
	return expr
}

// jsIdentifier sanitiza o nome do input para virar variável JS válida.
func jsIdentifier(name string) string {
	var b strings.Builder
	for i, r := range name {
		valid := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if valid {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_value"
	}
	return b.String()
}

var calculatorTmpl = template.Must(template.New("calculator").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            max-width: 600px;
            margin: 50px auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .calculator {
            background: white;
            padding: 30px;
            border-radius: 10px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        h1 {
            color: #6366f1;
            margin-bottom: 10px;
        }
        .input-group {
            margin: 20px 0;
        }
        label {
            display: block;
            margin-bottom: 5px;
            font-weight: bold;
            color: #333;
        }
        input {
            width: 100%;
            padding: 10px;
            border: 1px solid #ddd;
            border-radius: 5px;
            font-size: 16px;
        }
        button {
            background: #6366f1;
            color: white;
            padding: 12px 30px;
            border: none;
            border-radius: 5px;
            cursor: pointer;
            font-size: 16px;
            width: 100%;
            margin-top: 20px;
        }
        button:hover {
            background: #4f46e5;
        }
        .result {
            margin-top: 20px;
            padding: 20px;
            background: #f0fdf4;
            border-left: 4px solid #22c55e;
            border-radius: 5px;
            display: none;
        }
        .result h2 {
            margin: 0 0 10px 0;
            color: #15803d;
        }
        .result-value {
            font-size: 32px;
            font-weight: bold;
            color: #15803d;
        }
    </style>
</head>
<body>
    <div class="calculator">
        <h1>{{.Title}}</h1>
        <p>{{.ValuePromise}}</p>

        <form id="calculatorForm">
{{- range .Inputs}}
            <div class="input-group">
                <label for="{{.Name}}">{{.Label}}</label>
                <input
                    type="{{if .Type}}{{.Type}}{{else}}number{{end}}"
                    id="{{.Name}}"
                    name="{{.Name}}"
                    placeholder="{{.Placeholder}}"
                    required
                >
            </div>
{{- end}}
            <button type="submit">Calculate</button>
        </form>

        <div class="result" id="result">
            <h2>{{.OutputLabel}}</h2>
            <div class="result-value" id="resultValue"></div>
        </div>
    </div>

    <script>
        document.getElementById('calculatorForm').addEventListener('submit', function(e) {
            e.preventDefault();
{{range .Inputs}}
            const {{.JSName}} = parseFloat(document.getElementById('{{.Name}}').value);
{{- end}}

            const result = {{.Formula}};

            const unit = "{{.OutputUnit}}";
            document.getElementById('resultValue').textContent = unit + result.toFixed(2);
            document.getElementById('result').style.display = 'block';
        });
    </script>
</body>
</html>
`))
