package catalog

// DefaultLang is the language tag of the built-in catalog.
const DefaultLang = "en"

func init() {
	if err := Register(Builtin()); err != nil {
		panic(err)
	}
}

// DefaultRules are the override designations of the built-in catalog:
// prayer consistency (A1) as the primary obligation, major sins (A4) with
// acknowledgment (A5), and the foundations section (A) subtotal tier.
func DefaultRules() Rules {
	return Rules{
		PrimaryID:        "A1",
		TransgressionID:  "A4",
		AcknowledgmentID: "A5",
		FoundationID:     "A",
		FoundationFloor:  10,
		FoundationLow:    15,
	}
}

// Builtin returns the English catalog: six sections, twenty-two questions,
// options scored 0 through 5.
func Builtin() Catalog {
	return Catalog{
		Lang:  DefaultLang,
		Title: "The Nine Maqāmāt Self-Assessment",
		Rules: DefaultRules(),
		Sections: []Section{
			{
				ID:          "A",
				Title:       "The Foundations",
				Native:      "الأساسيات",
				Description: "Assessment of obligatory acts (Farāʾiḍ)",
				Questions: []Question{
					{
						ID:       "A1",
						Text:     "How consistent are you with the five daily prayers?",
						Critical: true,
						Options: []Option{
							{0, "I rarely pray or have abandoned prayer almost entirely"},
							{1, "I pray sometimes but miss many prayers regularly"},
							{2, "I pray most prayers but frequently miss one or two daily"},
							{3, "I pray all five but sometimes miss them (making up later)"},
							{4, "I pray all five consistently, rarely missing any"},
							{5, "I pray all five on time and add regular nawāfil"},
						},
					},
					{
						ID:   "A2",
						Text: "How do you approach the obligatory fast of Ramadan?",
						Options: []Option{
							{0, "I don't fast Ramadan"},
							{1, "I fast some days but not consistently"},
							{2, "I fast most of Ramadan with some missed days (not made up)"},
							{3, "I fast Ramadan completely, making up any missed days"},
							{4, "I fast Ramadan and occasionally fast voluntary fasts"},
							{5, "I fast Ramadan plus regular sunnah fasts (Mondays/Thursdays, etc.)"},
						},
					},
					{
						ID:   "A3",
						Text: "If zakat is obligatory on you, how do you handle it?",
						Options: []Option{
							{0, "I don't pay zakat even though it's obligatory on me"},
							{1, "I pay zakat inconsistently or less than required"},
							{2, "I pay zakat but without careful calculation"},
							{3, "I pay zakat correctly and on time"},
							{4, "I pay zakat and give regular sadaqah"},
							{5, "I pay zakat, give regular sadaqah, and seek out those in need"},
						},
					},
					{
						ID:       "A4",
						Text:     "How would you describe your relationship with major sins?",
						Critical: true,
						Options: []Option{
							{0, "I'm involved in major sins without concern"},
							{1, "I commit major sins but feel guilty afterward"},
							{2, "I struggle with major sins, making tawbah but relapsing"},
							{3, "I avoid most major sins but slip occasionally"},
							{4, "I consistently avoid major sins"},
							{5, "I avoid major sins and am cautious even about doubtful matters"},
						},
					},
					{
						ID:   "A5",
						Text: "When you commit a sin, what is your internal response?",
						Options: []Option{
							{0, "I don't consider my actions sinful / I justify them"},
							{1, "I know it's wrong but feel helpless to change"},
							{2, "I acknowledge the sin and intend to do better"},
							{3, "I make tawbah and take steps to avoid repetition"},
							{4, "I make immediate tawbah and feel genuine remorse"},
							{5, "I rarely sin, but when I do, I make extensive tawbah"},
						},
					},
				},
			},
			{
				ID:          "B",
				Title:       "Time & Priorities",
				Native:      "الوقت والأولويات",
				Description: "How you spend your non-obligatory time",
				Questions: []Question{
					{
						ID:   "B1",
						Text: "How do you typically spend your free time?",
						Options: []Option{
							{0, "Entertainment with no benefit (excessive gaming, binge-watching)"},
							{1, "Mostly entertainment with occasional beneficial activities"},
							{2, "A mix of entertainment and beneficial activities"},
							{3, "Mostly beneficial activities with some entertainment"},
							{4, "Almost all time in beneficial activities"},
							{5, "I consciously choose the MOST beneficial activity at each moment"},
						},
					},
					{
						ID:   "B2",
						Text: "If death came RIGHT NOW, how would you feel about what you're doing?",
						Options: []Option{
							{0, "I'd be embarrassed or regretful"},
							{1, "I'd wish I was doing something better"},
							{2, "I'd feel okay — not bad, just not great"},
							{3, "I'd feel reasonably content"},
							{4, "I'd feel good — this is worthwhile"},
							{5, "I'd feel completely at peace — exactly what I should be doing"},
						},
					},
					{
						ID:   "B3",
						Text: "Do you consider what's MORE important when choosing activities?",
						Options: []Option{
							{0, "I don't think about importance — I do what I feel like"},
							{1, "I sometimes consider what's important"},
							{2, "I usually choose important things over trivial things"},
							{3, "I consistently choose important activities"},
							{4, "I often weigh options to find what's MORE important"},
							{5, "I habitually seek the MOST important thing I could be doing"},
						},
					},
					{
						ID:   "B4",
						Text: `In an average week, how many hours feel truly "wasted"?`,
						Options: []Option{
							{0, "20+ hours"},
							{1, "15-20 hours"},
							{2, "10-15 hours"},
							{3, "5-10 hours"},
							{4, "2-5 hours"},
							{5, "Less than 2 hours — I'm intentional with almost all my time"},
						},
					},
				},
			},
			{
				ID:          "C",
				Title:       "Intention & Transformation",
				Native:      "النية والتحويل",
				Description: "The spiritual quality of your actions",
				Questions: []Question{
					{
						ID:   "C1",
						Text: "How often do you consciously make intention (niyyah) before daily activities?",
						Options: []Option{
							{0, "Rarely — I just do things"},
							{1, "Only before acts of worship"},
							{2, "Sometimes before important activities"},
							{3, "Often — I try to have good intentions"},
							{4, "Usually — I consciously intend for Allah's sake"},
							{5, "Almost always — everything is framed with intention"},
						},
					},
					{
						ID:       "C2",
						Text:     "Do you transform permissible activities into worship through intention?",
						Subtitle: "Example: Eating for strength to worship, sleeping to rest for tahajjud",
						Options: []Option{
							{0, "I never thought about this"},
							{1, "I've heard of this but don't practice it"},
							{2, "I try occasionally"},
							{3, "I do this somewhat regularly"},
							{4, "I do this with most daily activities"},
							{5, "This is my habitual state"},
						},
					},
					{
						ID:       "C3",
						Text:     `Do you engage in "lesser" activities to prevent yourself from worse ones?`,
						Subtitle: "Example: Nasheed instead of haram music, sports to avoid bad company",
						Options: []Option{
							{0, "I don't think strategically about avoiding sin"},
							{1, "I try to avoid sin but don't use substitutes"},
							{2, "I sometimes use this strategy"},
							{3, "I regularly employ this principle"},
							{4, "I actively plan my life around this principle"},
							{5, "I've structured my entire lifestyle to minimize exposure to sin"},
						},
					},
				},
			},
			{
				ID:          "D",
				Title:       "Knowledge & Practice",
				Native:      "العلم والعمل",
				Description: "Engagement with recommended and disputed acts",
				Questions: []Question{
					{
						ID:   "D1",
						Text: "How do you approach acts where scholars differ (duʿāʾ after prayer, mawlid)?",
						Options: []Option{
							{0, "I don't know about these differences"},
							{1, "I avoid anything with any scholarly dispute"},
							{2, "I'm cautious but occasionally participate"},
							{3, "I participate in acts that trustworthy scholars permit"},
							{4, "I actively seek recommended acts even if some dispute them"},
							{5, "I follow valid positions while respecting those who differ"},
						},
					},
					{
						ID:   "D2",
						Text: "How consistent are you with voluntary worship (nawāfil)?",
						Options: []Option{
							{0, "I don't do voluntary worship"},
							{1, "I occasionally do nawāfil when I feel like it"},
							{2, "I have some regular nawāfil (sunnah prayers)"},
							{3, "I'm consistent with several nawāfil"},
							{4, "I have a structured wird I maintain"},
							{5, "I have extensive awrād and constantly seek to increase"},
						},
					},
					{
						ID:   "D3",
						Text: "How actively do you pursue Islamic knowledge?",
						Options: []Option{
							{0, "I don't actively seek knowledge"},
							{1, "I learn passively (khutbahs, occasional videos)"},
							{2, "I occasionally read or attend classes"},
							{3, "I regularly read Islamic books or attend study circles"},
							{4, "I'm actively studying with teachers"},
							{5, "Knowledge-seeking is a primary occupation"},
						},
					},
				},
			},
			{
				ID:          "E",
				Title:       "Internal States",
				Native:      "أحوال القلب",
				Description: "The heart's condition",
				Questions: []Question{
					{
						ID:   "E1",
						Text: "What is your typical internal state during ṣalāh?",
						Options: []Option{
							{0, "I rush through without much thought"},
							{1, "My mind wanders constantly"},
							{2, "I have some focus but frequent distraction"},
							{3, "I'm generally focused with occasional wandering"},
							{4, "I'm usually present and connected"},
							{5, "I experience deep khushūʿ and presence with Allah"},
						},
					},
					{
						ID:   "E2",
						Text: "How often do you remember Allah outside of formal worship?",
						Options: []Option{
							{0, "Rarely"},
							{1, "A few times a day"},
							{2, "Several times throughout the day"},
							{3, "Frequently — I do adhkār morning/evening"},
							{4, "Very often — Allah is frequently on my tongue and heart"},
							{5, "Almost constantly — dhikr is my default state"},
						},
					},
					{
						ID:   "E3",
						Text: "When difficulties come, what is your internal response?",
						Options: []Option{
							{0, "Anger, despair, or complaint against Allah"},
							{1, "Frustration and difficulty accepting"},
							{2, "Initial struggle but eventual acceptance"},
							{3, "Acceptance with patience (ṣabr)"},
							{4, "Acceptance with contentment (riḍā)"},
							{5, "Acceptance with gratitude (shukr)"},
						},
					},
					{
						ID:   "E4",
						Text: "What primarily motivates your worship?",
						Options: []Option{
							{0, "I don't think about motivation"},
							{1, "Fear of punishment"},
							{2, "Fear mixed with hope for reward"},
							{3, "Hope for reward primarily"},
							{4, "Love of Allah with hope and fear"},
							{5, "Overwhelming love — I worship because He deserves it"},
						},
					},
				},
			},
			{
				ID:          "F",
				Title:       "Character & Relations",
				Native:      "الأخلاق والمعاملات",
				Description: "Outward character and dealings",
				Questions: []Question{
					{
						ID:   "F1",
						Text: "How do you generally treat people?",
						Options: []Option{
							{0, "I'm often harsh, dismissive, or unkind"},
							{1, "I'm decent to those I like, not so much to others"},
							{2, "I try to be polite but have frequent conflicts"},
							{3, "I'm generally kind and avoid harming others"},
							{4, "I actively try to benefit others and overlook faults"},
							{5, "I embody iḥsān — treating everyone with excellence"},
						},
					},
					{
						ID:   "F2",
						Text: "How do you respond to Muslims who follow different valid opinions?",
						Options: []Option{
							{0, "I consider them wrong or misguided"},
							{1, "I'm uncomfortable with differences"},
							{2, "I tolerate differences reluctantly"},
							{3, "I accept that valid differences exist"},
							{4, "I respect differences and don't judge"},
							{5, "I see beauty in ikhtilāf and pray for all Muslims"},
						},
					},
					{
						ID:   "F3",
						Text: "How much do you serve others (family, community, humanity)?",
						Options: []Option{
							{0, "I focus on myself"},
							{1, "I help when it's convenient"},
							{2, "I help family regularly"},
							{3, "I help family and occasionally community"},
							{4, "I regularly serve family, community, and beyond"},
							{5, "Service is a core part of my identity"},
						},
					},
				},
			},
		},
	}
}
