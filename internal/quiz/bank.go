package quiz

// Question is one multiple-choice item. Correct indexes Options.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Quiz is the question set for a course module.
type Quiz struct {
	Module    int        `json:"module"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// DefaultModule is served when a module has no quiz of its own.
const DefaultModule = 1

var quizzes = map[int]Quiz{
	1: {
		Module: 1,
		Title:  "Module 1: Welcome to Midjourney!",
		Questions: []Question{
			{
				Question:    "What is Midjourney?",
				Options:     []string{"A photo editing software", "An AI program that creates images from text descriptions", "A social media platform", "A drawing tablet"},
				Correct:     1,
				Explanation: "Midjourney is an AI program that uses artificial intelligence to generate images from text descriptions (prompts).",
			},
			{
				Question:    "Which platform does Midjourney use for its interface?",
				Options:     []string{"Instagram", "Twitter", "Discord", "Facebook"},
				Correct:     2,
				Explanation: "Midjourney operates through Discord, a chat platform where users can send commands to the Midjourney bot.",
			},
			{
				Question:    "What command do you use to create an image in Midjourney?",
				Options:     []string{"/create", "/imagine", "/generate", "/draw"},
				Correct:     1,
				Explanation: "The /imagine command is used to tell Midjourney to create an image based on your prompt.",
			},
			{
				Question:    "What do the 'U' buttons do in Midjourney?",
				Options:     []string{"Undo the last action", "Upload an image", "Upscale (make larger) a selected image", "Update the prompt"},
				Correct:     2,
				Explanation: "The U buttons (U1, U2, U3, U4) upscale the corresponding image from the grid, making it larger and more detailed.",
			},
			{
				Question:    "What should you avoid when creating prompts in Midjourney?",
				Options:     []string{"Using descriptive adjectives", "Creating violent or inappropriate content", "Adding lighting descriptions", "Using specific art styles"},
				Correct:     1,
				Explanation: "Midjourney has community guidelines that prohibit creating violent, inappropriate, or harmful content.",
			},
		},
	},
	2: {
		Module: 2,
		Title:  "Module 2: The Power of Words (Prompt Engineering)",
		Questions: []Question{
			{
				Question:    "What does the '--ar' parameter control?",
				Options:     []string{"Art style", "Aspect ratio (image shape)", "Artist reference", "Animation rate"},
				Correct:     1,
				Explanation: "The --ar parameter controls the aspect ratio, which determines the shape of your image (square, wide, tall, etc.).",
			},
			{
				Question:    "How do you separate different concepts in a multi-prompt?",
				Options:     []string{"Use commas", "Use semicolons", "Use double colons (::)", "Use periods"},
				Correct:     2,
				Explanation: "Double colons (::) are used to separate different concepts in multi-prompts, telling Midjourney to treat them as distinct elements.",
			},
			{
				Question:    "What does adding '::2' after a prompt element do?",
				Options:     []string{"Makes it appear twice", "Gives it double weight/importance", "Creates two versions", "Doubles the image size"},
				Correct:     1,
				Explanation: "Adding ::2 gives that element double weight, making it more important and prominent in the final image.",
			},
			{
				Question:    "What is the purpose of the '--no' parameter?",
				Options:     []string{"To say no to generating an image", "To remove unwanted elements from the image", "To create a negative image", "To reduce image quality"},
				Correct:     1,
				Explanation: "The --no parameter is used for negative prompting, telling Midjourney what you don't want to appear in your image.",
			},
			{
				Question:    "Which of these is a good example of descriptive language for AI?",
				Options:     []string{"a thing", "a majestic, ancient oak tree with golden sunlight filtering through its leaves", "tree", "plant"},
				Correct:     1,
				Explanation: "Descriptive language with specific adjectives and details helps Midjourney create more accurate and interesting images.",
			},
		},
	},
}

// ForModule returns the quiz for module, falling back to DefaultModule.
// The result is a deep copy.
func ForModule(module int) Quiz {
	q, ok := quizzes[module]
	if !ok {
		q = quizzes[DefaultModule]
	}
	return cloneQuiz(q)
}

// HasQuiz reports whether module has its own quiz.
func HasQuiz(module int) bool {
	_, ok := quizzes[module]
	return ok
}

func cloneQuiz(q Quiz) Quiz {
	questions := make([]Question, len(q.Questions))
	for i, item := range q.Questions {
		item.Options = append([]string(nil), item.Options...)
		questions[i] = item
	}
	q.Questions = questions
	return q
}
