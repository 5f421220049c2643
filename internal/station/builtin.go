package station

var stations = []Station{
	{
		ID:           1,
		Name:         "Complete Negligence",
		Native:       "التفريط التام",
		Category:     CategoryDhalim,
		Color:        "#B87333",
		Figure:       "Fuḍayl ibn ʿIyāḍ",
		FigureStory:  `He was a highway robber. One night, climbing a wall to sin, he heard: "Has not the time come for hearts to be humbled?" He said, "Yes, Lord, the time has come." He became one of the greatest saints of Islam.`,
		CurrentState: "You've identified as Muslim but have largely abandoned the practices of Islam.",
		GoodNews: []string{
			"You are still Muslim — mercy is wide open",
			`The Prophet ﷺ said the ẓālim "will be forgiven"`,
			"Many great Muslims started here",
		},
		Steps: []string{
			"Start with ONE prayer daily",
			"Add a second prayer after one week",
			"Set ONE prayer alarm",
			"Make duʿāʾ: 'O Allah, help me pray'",
		},
	},
	{
		ID:           2,
		Name:         "Mixed Deeds",
		Native:       "خلطوا عملاً صالحاً وآخر سيئاً",
		Category:     CategoryDhalim,
		Color:        "#A0522D",
		Figure:       "ʿAmr ibn al-ʿĀṣ رضي الله عنه",
		FigureStory:  "A late convert who mixed good and bad. On his deathbed, he asked companions to stay by his grave — his humility and awareness of his mixed state is a model.",
		CurrentState: "You do good deeds but mix them with sins. Your acknowledgment of sin is itself a mercy.",
		GoodNews: []string{
			"Allah mentions your category with hope",
			"Acknowledgment of sin is a sign of faith",
			"The struggle you feel IS the spiritual life",
		},
		Steps: []string{
			"Make five prayers non-negotiable",
			"Identify your TOP 3 recurring sins",
			"Work on eliminating ONE at a time",
			"Find accountability",
		},
	},
	{
		ID:           3,
		Name:         "The Riffraff",
		Native:       "الغوغاء",
		Category:     CategoryDhalim,
		Color:        "#8B4513",
		Figure:       "Pre-conversion ʿUmar رضي الله عنه",
		FigureStory:  "Before Islam, ʿUmar wasn't the worst — just harsh and tribal, spending time without higher purpose. That same energy became al-Fārūq.",
		CurrentState: "You maintain farāʾiḍ but much time is wasted in things of no benefit.",
		GoodNews: []string{
			"Your foundations are solid",
			"You're better than those who waste time AND sin",
			"You just need to redirect existing time",
		},
		Steps: []string{
			"Track every hour for ONE week",
			"Convert 30% of 'wasted' to 'beneficial'",
			"Add 10 min Quran after Fajr",
			"Join ONE regular beneficial gathering",
		},
	},
	{
		ID:           4,
		Name:         "The Lesser Evil",
		Native:       "دفع الأشد بالأخف",
		Category:     CategoryMuqtasid,
		Color:        "#46AF7D",
		Figure:       "The Minister of Fez",
		FigureStory:  "A powerful minister had his sheikh make him sit on a garbage heap and beg. This 'lower' thing broke his ego — he became one of the great awliyāʾ of Morocco.",
		CurrentState: "You think strategically — engaging in something lower can prevent something worse.",
		GoodNews: []string{
			"You've moved beyond mere compliance",
			"You're actively working on your heart",
			"Your spiritual cause-and-effect awareness is awakening",
		},
		Steps: []string{
			"Make intention for EVERYTHING",
			"Build a simple wird",
			"Track wird consistency 30 days",
			"Study purification of the heart",
		},
	},
	{
		ID:           5,
		Name:         "Ennobled Permissibles",
		Native:       "المباحات الشريفة",
		Category:     CategoryMuqtasid,
		Color:        "#3A9D6A",
		Figure:       "ʿAbd al-Raḥmān ibn ʿAwf رضي الله عنه",
		FigureStory:  "One of the ten promised Paradise, enormously wealthy — but his wealth was worship. He transformed commerce into ʿibādah through intention.",
		CurrentState: "You transform ordinary activities into worship through intention.",
		GoodNews: []string{
			"You're living Islam in every moment",
			"The mundane has become sacred",
			"Your entire life is becoming worship",
		},
		Steps: []string{
			"Add disputed good deeds scholars recommend",
			"Engage with ikhtilāf",
			"Learn your madhab's positions",
			`Practice "this is valid, this is also valid"`,
		},
	},
	{
		ID:           6,
		Name:         "Disputed Virtues",
		Native:       "الفضائل المختلف فيها",
		Category:     CategoryMuqtasid,
		Color:        "#2E8B57",
		Figure:       "Imam al-Shāṭibī",
		FigureStory:  "The Andalusian scholar faced criticism for disputed positions. He wrote extensively defending legitimate ikhtilāf while respecting those who differed.",
		CurrentState: "You engage in acts some call recommended, others permissible — following valid opinions without condemning others.",
		GoodNews: []string{
			"You're never below mubāḥ",
			"You embody the tolerance the Prophet ﷺ wanted",
			"You understand ikhtilāf is mercy",
		},
		Steps: []string{
			`Ask: "Is this the BEST use of my time?"`,
			"Learn relative ranks of good deeds",
			"Protect your peak spiritual hours",
			"Prioritize benefiting others",
		},
	},
	{
		ID:           7,
		Name:         "Important Things",
		Native:       "في المهم",
		Category:     CategorySabiq,
		Color:        "#B69419",
		Figure:       "Ibn Wahb",
		FigureStory:  "In Mālik's circle, he got up to pray nāfila. Mālik stopped him: 'What you're going to is not more important than what you're in. This IS ʿibādah.'",
		CurrentState: "You're consistently in something important — your time is purposeful.",
		GoodNews: []string{
			"You've internalized that learning IS action",
			"Your life has purpose and direction",
			"You can reach the ʿārifīn through intention",
		},
		Steps: []string{
			`Ask: "Is there something MORE important now?"`,
			"Learn the fiqh of priorities",
			"Study Ḥanẓala's hadith",
			"Examine what MORE important thing you might be missing",
		},
	},
	{
		ID:           8,
		Name:         "Hour by Hour",
		Native:       "ساعة وساعة",
		Category:     CategorySabiq,
		Color:        "#C5A028",
		Figure:       "Ḥanẓala رضي الله عنه",
		FigureStory:  `He said "Ḥanẓala has become a hypocrite!" — exalted with the Prophet ﷺ, then preoccupied with family. The Prophet ﷺ said: "Sāʿatun wa sāʿatun — a time for this, a time for that."`,
		CurrentState: `You practice "a time for this, a time for that" — alternating between important and MORE important.`,
		GoodNews: []string{
			"You recognize different spiritual states",
			"Like Ḥanẓala, you feel the difference",
			"If always exalted, angels would shake your hands",
		},
		Steps: []string{
			"Minimize gap between exalted and ordinary",
			"Bring FULL presence to everything",
			"Practice continuous dhikr",
			"Spend more time with people of Station 9",
		},
	},
	{
		ID:           9,
		Name:         "Station of the ʿĀrifīn",
		Native:       "مقام العارفين",
		Category:     CategorySabiq,
		Color:        "#D4AF37",
		Figure:       "Abu Bakr al-Ṣiddīq رضي الله عنه",
		FigureStory:  "The Prophet ﷺ said: 'If Abu Bakr's īmān were weighed against the entire ummah, his would outweigh it.' Always in the optimal state.",
		CurrentState: "If death came now, you would not find anything you would want to increase.",
		GoodNews: []string{
			"This is the station of the knowers of Allah",
			"Al-Mawwāq: 'not in the capacity of the majority'",
			"Even ʿārifūn slip — perfected only in prophets",
		},
		Steps: []string{
			"Never assume you've 'arrived'",
			"See yourself as the least of Muslims",
			"Your role is helping others climb",
			"Your presence should elevate others",
		},
		Warning: "If you scored yourself here, you're probably not in it. The ʿārifūn see themselves as lowest.",
	},
}
