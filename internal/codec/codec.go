// Package codec decodes classification and render requests from JSON.
//
// Documents are validated against a JSON Schema before decoding, so the
// conversion code only has to handle well-shaped input. Operator and
// function names that are not recognized decode to the unset variant; the
// renderer then declines to read the tree aloud.
package codec

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"

	"github.com/abhisek/mathiz-eval/internal/mathexpr"
	"github.com/abhisek/mathiz-eval/internal/value"
)

// ClassifyRequest asks whether an answer satisfies a named rule.
type ClassifyRequest struct {
	Interaction string
	Rule        string
	Answer      value.Value
	Inputs      value.Inputs
}

// RenderRequest asks for the spoken form of an expression or an equation.
// Exactly one of Expression and Equation is set.
type RenderRequest struct {
	Language   language.Tag
	Fractions  bool
	Expression mathexpr.Expression
	Equation   *mathexpr.Equation
}

type wireClassifyRequest struct {
	Interaction string               `json:"interaction"`
	Rule        string               `json:"rule"`
	Answer      wireValue            `json:"answer"`
	Inputs      map[string]wireValue `json:"inputs"`
}

type wireRenderRequest struct {
	Language   string        `json:"language"`
	Fractions  bool          `json:"fractions"`
	Expression *wireExpr     `json:"expression"`
	Equation   *wireEquation `json:"equation"`
}

type wireValue struct {
	Real       *float64  `json:"real"`
	Integer    *int64    `json:"integer"`
	String     *string   `json:"string"`
	Set        *[]string `json:"set"`
	Ratio      *[]uint32 `json:"ratio"`
	Expression *wireExpr `json:"expression"`
}

type wireExpr struct {
	Constant *float64      `json:"constant"`
	Variable *string       `json:"variable"`
	Binary   *wireBinary   `json:"binary"`
	Unary    *wireUnary    `json:"unary"`
	Function *wireFunction `json:"function"`
	Group    *wireExpr     `json:"group"`
}

type wireBinary struct {
	Op       string    `json:"op"`
	Left     *wireExpr `json:"left"`
	Right    *wireExpr `json:"right"`
	Implicit bool      `json:"implicit"`
}

type wireUnary struct {
	Op      string    `json:"op"`
	Operand *wireExpr `json:"operand"`
}

type wireFunction struct {
	Name     string    `json:"name"`
	Argument *wireExpr `json:"argument"`
}

type wireEquation struct {
	Left  *wireExpr `json:"left"`
	Right *wireExpr `json:"right"`
}

// DecodeClassifyRequest validates and decodes a classification request.
func DecodeClassifyRequest(raw []byte) (*ClassifyRequest, error) {
	if err := validate(ClassifyRequestSchema, raw); err != nil {
		return nil, err
	}
	var w wireClassifyRequest
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Schema: ClassifyRequestSchema.Name, Err: err}
	}

	req := &ClassifyRequest{
		Interaction: w.Interaction,
		Rule:        w.Rule,
		Answer:      w.Answer.toValue(),
		Inputs:      make(value.Inputs, len(w.Inputs)),
	}
	for name, in := range w.Inputs {
		req.Inputs[name] = in.toValue()
	}
	return req, nil
}

// DecodeRenderRequest validates and decodes a render request. A missing
// language decodes as language.Und so the caller can apply its default.
func DecodeRenderRequest(raw []byte) (*RenderRequest, error) {
	if err := validate(RenderRequestSchema, raw); err != nil {
		return nil, err
	}
	var w wireRenderRequest
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Schema: RenderRequestSchema.Name, Err: err}
	}

	lang := language.Und
	if w.Language != "" {
		tag, err := language.Parse(w.Language)
		if err != nil {
			return nil, &DecodeError{Schema: RenderRequestSchema.Name, Err: fmt.Errorf("language %q: %w", w.Language, err)}
		}
		lang = tag
	}

	req := &RenderRequest{Language: lang, Fractions: w.Fractions}
	if w.Equation != nil {
		req.Equation = &mathexpr.Equation{
			Left:  w.Equation.Left.toExpression(),
			Right: w.Equation.Right.toExpression(),
		}
	} else {
		req.Expression = w.Expression.toExpression()
	}
	return req, nil
}

func (w wireValue) toValue() value.Value {
	switch {
	case w.Real != nil:
		return value.Real(*w.Real)
	case w.Integer != nil:
		return value.Integer(*w.Integer)
	case w.String != nil:
		return value.NormalizedString(*w.String)
	case w.Set != nil:
		return value.NewSetOfStrings(*w.Set...)
	case w.Ratio != nil:
		return value.RatioExpression(*w.Ratio)
	case w.Expression != nil:
		return value.MathExpression{Expression: w.Expression.toExpression()}
	default:
		return nil
	}
}

// toExpression returns nil for a nil or empty node.
func (w *wireExpr) toExpression() mathexpr.Expression {
	if w == nil {
		return nil
	}
	switch {
	case w.Constant != nil:
		return mathexpr.Constant{Value: *w.Constant}
	case w.Variable != nil:
		return mathexpr.Variable{Name: *w.Variable}
	case w.Binary != nil:
		return mathexpr.BinaryOp{
			Operator: mathexpr.ParseBinaryOperator(w.Binary.Op),
			Left:     w.Binary.Left.toExpression(),
			Right:    w.Binary.Right.toExpression(),
			Implicit: w.Binary.Implicit,
		}
	case w.Unary != nil:
		return mathexpr.UnaryOp{
			Operator: mathexpr.ParseUnaryOperator(w.Unary.Op),
			Operand:  w.Unary.Operand.toExpression(),
		}
	case w.Function != nil:
		return mathexpr.FunctionCall{
			Function: mathexpr.ParseFunction(w.Function.Name),
			Argument: w.Function.Argument.toExpression(),
		}
	case w.Group != nil:
		return mathexpr.Group{Inner: w.Group.toExpression()}
	default:
		return nil
	}
}
