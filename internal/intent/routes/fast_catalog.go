// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package routes

// FastCatalog returns the richly annotated catalog used by the lexical
// classifier. Example lists, patterns, keywords, and phrases are hand-tuned
// as a set: changing one list shifts the ensemble weights of every signal,
// so edits should be validated against the classifier test suite.
func FastCatalog() *Catalog {
	c, err := NewCatalog(fastRoutes())
	if err != nil {
		// The built-in catalog is static data; a compile failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return c
}

func fastRoutes() []Route {
	return []Route{
		{
			Name: Greeting,
			Examples: []string{
				"hello", "hi", "hey", "good morning", "good afternoon",
				"good evening", "greetings", "howdy", "hi there",
				"hello there", "hey there", "what's up", "whats up",
				"how are you", "how are you doing", "how do you do",
				"nice to meet you", "pleased to meet you", "yo",
				"hiya", "good day", "salutations", "how's it going",
			},
			Patterns: []string{
				`^(hi|hello|hey|greetings|howdy|yo|hiya)\b`,
				`\b(good\s+(morning|afternoon|evening|day))\b`,
				`\b(what'?s?\s+up|how\s+are\s+you|how\s+do\s+you\s+do)\b`,
				`^(nice|pleased)\s+to\s+meet\s+you`,
				`\bhow'?s\s+it\s+going\b`,
				`^\w{2,4}$`,
			},
			Keywords: []string{"hi", "hello", "hey", "greetings", "morning", "afternoon", "evening", "howdy", "yo"},
			Phrases:  []string{"how are you", "good morning", "good afternoon", "good evening", "whats up", "what's up"},
		},
		{
			Name: AgentRequest,
			Examples: []string{
				"I need to speak to an agent", "connect me with a representative",
				"transfer me to a human", "I want to talk to someone",
				"can I speak with an agent", "get me a real person",
				"I need human assistance", "connect me to support",
				"speak to customer service", "talk to a representative",
				"escalate to agent", "I need a human", "transfer to agent",
				"let me talk to someone real", "I want human help",
				"can I talk to a person", "live agent please",
				"human support needed", "switch to human", "real person please",
				"operator please", "I need to speak with someone",
				"connect me to a person", "talk to customer service",
				"i want to talk to sales", "i want call from sales",
				"i want to talk sales team", "i want to talk sales",
				"talk to sales", "talk to sales team",
			},
			Patterns: []string{
				`\b(speak|talk|connect|transfer|escalate)\s+(to|with|me\s+(to|with))\s+(an?\s+)?(agent|human|representative|someone|person|operator)\b`,
				`\b(need|want|require)\s+(a|an|the)?\s*(agent|human|representative|real\s+person|operator)\b`,
				`\b(need|want)\s+to\s+(speak|talk)\s+(to|with)\s+(an?\s+)?(agent|human|representative|someone|operator)\b`,
				`\b(get|give)\s+me\s+(a|an|to)\s+(human|agent|representative|real\s+person)\b`,
				`\b(customer\s+service|support|live)\s+(agent|representative|person)\b`,
				`\b(human|real\s+person|operator)\s+(please|now|needed|support)\b`,
				`\bswitch\s+to\s+(a\s+)?(human|agent|person)\b`,
				`\blet\s+me\s+(talk|speak)\s+to\s+(a\s+)?(human|agent|person|someone)\b`,
				`\b(talk|speak)\s+to\s+(sales|salesperson|sales\s+team)\b`,
				`\b(need|want)\s+(to\s+)?(talk|speak)\s+(to\s+)?(sales|salesperson|sales\s+team)\b`,
			},
			Keywords: []string{
				"agent", "human", "representative", "transfer", "connect", "speak", "escalate",
				"operator", "live agent", "customer service", "real person",
				"sales", "salesperson", "sales team",
			},
			Phrases: []string{
				"speak to agent", "talk to human", "connect me", "transfer me",
				"real person", "human help", "customer service", "live agent",
				"need agent", "want agent", "need human", "talk to agent",
				"talk to sales", "talk to sales team", "call from sales",
			},
		},
		{
			Name: Scheduler,
			Examples: []string{
				"I want to book an appointment", "schedule a meeting",
				"can I make an appointment", "book a consultation",
				"I need to schedule something", "set up an appointment",
				"arrange a meeting", "I want to reserve a time slot",
				"schedule an appointment for next week", "book me for tomorrow",
				"I need to see a doctor", "make a reservation",
				"I'd like to schedule a visit", "can I get an appointment",
				"set up a meeting time", "reserve a time", "book a session",
				"schedule a call", "arrange an appointment", "when can I come in",
				"make an appointment", "schedule me in",
				"i want to schedule my meeting", "i want to schedule a meeting",
				"want to schedule meeting", "schedule my meeting", "book my appointment",
			},
			Patterns: []string{
				`\b(want|need|like|would\s+like)\s+(to\s+)?(schedule|book|arrange|set\s+up)\s+(my|a|an|the)?\s*(meeting|appointment|call|session)\b`,
				`\b(book|schedule|make|set\s+up|arrange|reserve)\s+(an?\s+|my\s+|the\s+)?(appointment|meeting|consultation|visit|session|call)\b`,
				`\b(appointment|meeting|consultation|visit|session)\s+(booking|scheduling|slot)\b`,
				`\bcome\s+in\s+(for|to\s+see)\b`,
				`\b(get|have)\s+an?\s+appointment\b`,
				`\bavailability\s+(for|to)\b`,
				`\bschedule\s+me\s+(in|for)\b`,
				`\bschedule\s+(my|a|an|the)?\s*(meeting|appointment|call|session)\b`,
				`\bbook\s+(my|a|an|the)?\s*(meeting|appointment|call|session)\b`,
			},
			Keywords: []string{
				"appointment", "schedule", "book", "meeting", "consultation", "visit",
				"reservation", "calendar", "time slot", "reserve", "arrange", "session", "availability", "call",
			},
			Phrases: []string{
				"book appointment", "schedule meeting", "make appointment", "set up meeting",
				"reserve time", "book session", "schedule visit", "appointment slot",
				"want to schedule", "need to schedule", "schedule my", "book my",
			},
		},
		{
			Name: ConversationClose,
			Examples: []string{
				"no", "nope", "no thanks", "no thank you",
				"nothing", "nothing else", "no i am fine",
				"i dont need anything", "i do not need anything",
				"i dont need any answer", "i do not need any answer",
				"i dont want anything", "i do not want anything",
				"no need", "not needed", "its fine", "it is fine",
				"never mind", "nevermind", "leave it", "forget it",
				"thats all", "that is all", "nothing more",
				"im good", "i am good", "im fine", "i am fine",
				"bye", "goodbye", "good bye", "see you", "take care",
				"ok bye", "okay bye", "thanks bye", "thank you bye",
				"i am done", "im done", "done", "all done",
				"no more questions", "no further questions",
				"i dont have any more questions",
				"thats it", "that is it", "enough",
				"stop", "end", "close", "exit",
				"no i am ok", "no its ok", "no it is ok",
				"not interested", "not right now", "maybe later",
				"i will come back later", "later",
			},
			Patterns: []string{
				`^(no|nope|nah)\b`,
				`^(bye|goodbye|good\s*bye|see\s+you|take\s+care)\b`,
				`^(done|finished|all\s+done|im\s+done|i\s+am\s+done)$`,
				`^(nothing|nothing\s+else|no\s+need|not\s+needed)$`,
				`^(stop|end|close|exit|leave\s+it|forget\s+it)$`,
				`\b(dont|do\s+not|don't)\s+(need|want|require)\s+(any|anything|an)\b`,
				`^(im|i\s+am)\s+(good|fine|ok|okay|done)$`,
				`^(not\s+interested|not\s+right\s+now|maybe\s+later|later)$`,
				`^(never\s*mind|thats\s+(all|it)|that\s+is\s+(all|it))$`,
			},
			Keywords: []string{
				"no", "bye", "goodbye", "done", "nothing", "stop",
				"end", "leave", "forget", "fine", "later", "enough",
				"nevermind", "exit", "close",
			},
			Phrases: []string{
				"no thanks", "no thank you", "i am fine", "im good",
				"nothing else", "thats all", "no need", "not needed",
				"leave it", "forget it", "never mind", "all done",
				"im done", "not interested", "maybe later",
				"i dont need", "i dont want", "no more questions",
			},
		},
		{
			Name: Abusive,
			Examples: []string{
				"fuck you", "you are an idiot", "this is bullshit",
				"what the hell", "piss off", "you are useless",
				"go to hell", "damn it", "you suck", "asshole",
				"you are a moron", "stupid bot", "this is garbage",
				"kill yourself", "i hate you", "you are worthless",
			},
			Patterns: []string{
				`\b(fuck|shit|bitch|cunt|asshole|bastard|douchebag)\b`,
				`\b(idiot|stupid|dumb|useless|moron|garbage)\b`,
				`\b(hell|damn)\b`,
				`\b(piss\s*off)\b`,
				`\b(kill\s*yourself)\b`,
				`\b(i\s*hate\s*you)\b`,
			},
			Keywords: []string{
				"fuck", "shit", "bitch", "cunt", "asshole", "bastard", "idiot", "stupid", "dumb",
				"useless", "hell", "damn", "piss off", "suck", "moron", "garbage", "kill", "hate",
				"worthless", "douchebag",
			},
			Phrases: []string{
				"fuck you", "what the hell", "piss off", "go to hell", "you suck",
				"you are an idiot", "this is bullshit", "you are useless",
				"kill yourself", "i hate you",
			},
		},
		{
			Name: NormalQA,
			Examples: []string{
				"what are your business hours", "how much does it cost",
				"where are you located", "what services do you offer",
				"do you accept insurance", "what is your return policy",
				"how long does shipping take", "can you help me with",
				"I have a question about", "tell me about your products",
				"what are the requirements", "how does this work",
				"explain the process", "what options do I have",
				"how to use this", "where can I find", "when do you open",
				"why is this happening", "which option is better",
				"i want to know about handshaking", "i want to understand about TCP",
				"tell me about data", "explain HTTP protocol",
			},
			Patterns: []string{
				`^(what|where|when|who|why|how|which|can|could|do|does|is|are|will|would)\b`,
				`\b(tell|explain|describe|clarify|show)\s+(me\s+)?(about|how|what|why)\b`,
				`\b(question|inquiry|wondering|curious|asking)\s+(about|regarding)\b`,
				`\b(help|assist)\s+me\s+(with|understand|to)\b`,
				`\b(information|details|info)\s+(about|on|regarding)\b`,
				`\bhow\s+(do|can|does|to)\b`,
				`\b(want|need)\s+to\s+(know|understand|learn)\s+about\b`,
			},
			Keywords: []string{
				"what", "how", "where", "when", "why", "question", "help", "information",
				"explain", "tell", "cost", "price", "hours", "services", "policy", "know", "understand",
			},
			Phrases: []string{
				"how much", "what are", "where is", "how does", "can you help",
				"tell me", "how to", "business hours", "what is", "want to know", "want to understand",
			},
		},
	}
}
