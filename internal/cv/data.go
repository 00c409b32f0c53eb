package cv

// Default returns the built-in resume record. The assistant ships with this
// record compiled in; a different one can be supplied via the cv-file config
// key.
func Default() *Record {
	return &Record{
		Name: "Aditya Pratap Singh",
		Contact: Contact{
			Phone:   "+49 160 8220604",
			Email:   "aps270195@gmail.com",
			Address: "Ansgar Strasse 96A, Elmshorn 25336, Germany",
		},
		Headline: "Senior Product Owner – Cards & Accounts | Digital Banking Innovator | RegTech Expert",
		Summary: "Accomplished Product Leader with 10+ years of experience delivering high-impact technology products " +
			"across fintech and banking in Europe. Skilled in managing complex, regulated domains (Cards, KYC/AML, SEPA) " +
			"with an agile, delivery-focused mindset. Now seeking to pivot into AI-driven project leadership, bringing " +
			"strategic thinking, cross-functional coordination, and a hands-on approach to fast-paced, high-stakes " +
			"initiatives in emerging technologies.",
		KeyValueProposition: []string{
			"AI & Emerging Tech Delivery: Strategic planning and execution of complex product initiatives with fast prototyping using APIs and no-code/low-code tools.",
			"Cross-Functional Leadership: Bridge between tech, business, legal, and compliance teams across geographies.",
			"End-to-End Product Ownership: From discovery and vision to KPIs and delivery across B2B and B2C environments.",
			"Technical Acumen: REST APIs, Kafka, ISO 20022, Microservices; confident navigating systems and architecture discussions.",
			"Data-Informed Decisions: SQL, Power BI, Snowflake; metric-driven product optimizations.",
			"Regulatory & Risk Oversight: Deep exposure to PSD2, GDPR, BaFin, KYC/AML protocols.",
		},
		Experience: []ExperienceItem{
			{
				Company:  "Barclays Bank",
				Location: "Hamburg, Germany",
				Role:     "Assistant Vice President - Cards",
				Start:    "September 2023",
				End:      "Present",
				Bullets: []string{
					"Driving cross-border integration of card systems between UK & Germany with full regulatory alignment.",
					"Introduced scalable product enhancements using customer behavior analytics for fraud detection and journey personalization.",
					"Coordinated with legal, IT, and compliance to implement interoperability frameworks for seamless digital banking.",
				},
			},
			{
				Company:  "Auto 1",
				Location: "Berlin, Germany",
				Role:     "Product Manager - Cards",
				Start:    "April 2022",
				End:      "August 2023",
				Bullets: []string{
					"Owned the digital wallet and cards domain – from vendor acquisition to feature roadmap execution.",
					"Deployed Kafka-based real-time event queues, enabling 30% faster authorization and reconciliation cycles.",
					"Refactored legacy integrations into modular microservices, improving system scalability and maintainability.",
				},
			},
			{
				Company:  "Qonto",
				Location: "Paris, France",
				Role:     "Product Manager - Cards",
				Start:    "April 2019",
				End:      "March 2022",
				Bullets: []string{
					"Delivered SEPA middleware and API-based integration for 3rd-party KYC/AML tools across France, Germany, and Spain.",
					"Launched new platinum cards and increased Cards ARPU and Decline rate.",
					"Owned product KPIs, including SLA adherence, error rates, and latency for real-time payment networks.",
				},
			},
		},
		KeySkills: []string{
			"Cards & Payments: Authorization, 3DS/OOB, Card Restrictions, Lifecycle, Tokenization, Settlement",
			"RegTech: KYC, AML, SEPA, ISO 20022, GDPR, PSD2, SWIFT, BaFin compliance",
			"Systems & Architecture: REST APIs, Kafka, Microservices, Message Queues",
			"Data & Tools: SQL, Snowflake, Power BI, Jira, Confluence",
			"Product & Agile: OKRs, Agile/Scrum, Discovery → Delivery → Optimization",
			"B2B & B2C Payment Ecosystems (SEPA, MT940, camt.052)",
		},
		Education: []EducationItem{
			{
				Institution: "Ecole Polytechnique",
				Location:    "Paris, France",
				Degree:      "Master of Science and Technology: Internet of Things",
				Years:       "2017 – 2019",
			},
			{
				Institution: "University of Delhi",
				Location:    "Delhi, India",
				Degree:      "Bachelors of Technology: Computer Science",
				Years:       "2013 – 2017",
			},
		},
	}
}
