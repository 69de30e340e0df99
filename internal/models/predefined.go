package models

import "github.com/lib/pq"

// PredefinedQuestion is a curated question/answer pair answered without
// retrieval. Rows are seeded at startup and are not user-mutable.
type PredefinedQuestion struct {
	ID       uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Question string         `gorm:"column:question;type:text;uniqueIndex;not null" json:"question"`
	Answer   string         `gorm:"column:answer;type:text;not null" json:"answer"`
	Category string         `gorm:"column:category;type:text" json:"category"`
	Keywords pq.StringArray `gorm:"column:keywords;type:text[]" json:"-"`
}

func (PredefinedQuestion) TableName() string { return "predefined_questions" }

// SeedQuestions is the curated FAQ set loaded into the store on startup.
func SeedQuestions() []PredefinedQuestion {
	return []PredefinedQuestion{
		{
			Question: "What are your pricing models?",
			Answer:   "We offer flexible pricing models tailored to your needs: flat monthly rates with no long-term contracts, so you can cancel anytime. Pricing is transparent and based on the services you require. Contact us for a customized quote that fits your project scope.",
			Category: "billing",
		},
		{
			Question: "Do you have any setup fees?",
			Answer:   "No, we do not charge any setup fees. We believe in transparent pricing with no hidden costs. You only pay for the services you use on a flat monthly rate basis.",
			Category: "billing",
		},
		{
			Question: "What payment methods do you accept?",
			Answer:   "We accept multiple payment methods including credit cards, bank transfers, and online payment platforms. Our billing is flexible to accommodate your preferred payment process.",
			Category: "billing",
		},
		{
			Question: "What services do you offer?",
			Answer:   "We are a trusted white label partner for digital agencies. We offer web development, mobile app development, custom software solutions, UI/UX design, and dedicated development teams that integrate seamlessly with your existing operations.",
			Category: "core_functionality",
		},
		{
			Question: "What technologies do you work with?",
			Answer:   "Our teams work with a wide range of modern technologies including React, Angular, Vue.js, Node.js, Python, Java, .NET, iOS (Swift), Android (Kotlin), React Native, Flutter, and cloud platforms like AWS, Azure, and Google Cloud.",
			Category: "core_functionality",
		},
		{
			Question: "How do you ensure quality in your deliverables?",
			Answer:   "We maintain a 100% satisfaction guarantee through rigorous quality assurance, code reviews, automated testing, and continuous integration. Our teams follow industry best practices and agile methodologies.",
			Category: "core_functionality",
		},
		{
			Question: "What is your white label service?",
			Answer:   "Our white label service lets digital agencies hire plug-and-play teams in just a few clicks. We work behind the scenes as an extension of your team, with no contracts and flat monthly rates. Scale up or down as needed.",
			Category: "services",
		},
		{
			Question: "Can I hire a dedicated remote team?",
			Answer:   "Yes! We offer dedicated remote teams that work exclusively on your projects. Our teams are vetted professionals who integrate with your workflows and communication channels.",
			Category: "services",
		},
		{
			Question: "Do you offer ongoing support and maintenance?",
			Answer:   "Absolutely. We provide comprehensive ongoing support and maintenance for all our projects: bug fixes, updates, performance optimization, security patches, and feature enhancements.",
			Category: "services",
		},
		{
			Question: "How quickly can I get started?",
			Answer:   "You can get started in just a few clicks. Our streamlined onboarding typically has a team ready to start on your project within 24-48 hours after the initial consultation.",
			Category: "services",
		},
	}
}
