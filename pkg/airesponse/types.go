package airesponse

// Shape identifies which payload layout Adapt recognized.
type Shape string

const (
	ShapeFencedOutput Shape = "fenced_output" // [{"output": "```json [...] ```"}]
	ShapeTasks        Shape = "tasks"         // {"tasks": [...], "summary": "..."}
	ShapeResponse     Shape = "response"      // {"response": "1. ... 2. ..."}
	ShapeString       Shape = "string"        // "1. ... 2. ..."
)

// Candidate is a task description that has not been finalized yet.
// Empty optional fields are resolved by the caller's heuristics.
type Candidate struct {
	Text        string
	Priority    string
	Category    string
	TimeContext string
}

// Result is the normalized form of a remote payload.
type Result struct {
	Candidates []Candidate
	Summary    string
	Shape      Shape
}
