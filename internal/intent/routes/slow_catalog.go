// Copyright 2026 The intentGate Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package routes

// SlowCatalog returns the example-only catalog used by the semantic
// classifier. The example sets are expanded relative to the fast catalog;
// the embedding model needs no patterns or keywords, only utterances to
// average into a route centroid.
func SlowCatalog() *Catalog {
	c, err := NewCatalog(slowRoutes())
	if err != nil {
		panic(err)
	}
	return c
}

func slowRoutes() []Route {
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
		},
		{
			Name: AgentRequest,
			Examples: []string{
				"I need to speak to an agent",
				"connect me with a representative",
				"transfer me to a human",
				"I want to talk to someone",
				"can I speak with an agent",
				"get me a real person",
				"I need human assistance",
				"connect me to support",
				"speak to customer service",
				"talk to a representative",
				"escalate to agent",
				"I need a human",
				"I want human help",
				"live agent please",
				"switch to human",
				"operator please",
				"get me an agent now",
				"I want to talk to sales",
				"I want a call from sales",
				"I want to talk to the sales team",
				"let me talk to sales now",
			},
		},
		{
			Name: Scheduler,
			Examples: []string{
				"I want to book an appointment",
				"schedule a meeting",
				"can I make an appointment",
				"book a consultation",
				"I need to schedule something",
				"set up an appointment",
				"arrange a meeting",
				"I want to reserve a time slot",
				"schedule an appointment for next week",
				"book me for tomorrow",
				"make a reservation",
				"set up a meeting time",
				"reserve a time",
				"book a session",
				"schedule a call",
				"I want to schedule my meeting",
				"I need to book a meeting",
				"schedule my appointment",
			},
		},
		{
			Name: ConversationClose,
			Examples: []string{
				"no", "nope", "no thanks", "no thank you",
				"nothing", "nothing else", "i dont need anything",
				"i dont need any answer", "i dont want anything",
				"no need", "im fine", "i am fine", "im good", "i am good",
				"bye", "goodbye", "see you", "take care",
				"i am done", "im done", "done", "all done",
				"thats all", "that is all", "nothing more",
				"never mind", "forget it", "leave it",
				"no more questions", "no i am ok",
				"not interested", "not right now", "maybe later",
				"stop", "end", "close", "exit",
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
				"go fuck yourself", "eat shit", "you are a joke",
				"this is a waste of time", "i will kill you",
			},
		},
		{
			Name: NormalQA,
			Examples: []string{
				"what are your business hours",
				"how much does it cost",
				"where are you located",
				"what services do you offer",
				"what is your return policy",
				"how long does shipping take",
				"I have a question about",
				"tell me about your products",
				"how does this work",
				"explain the process",
				"I want to know about handshaking",
				"I want to understand TCP",
				"what is data encryption",
				"explain HTTP protocol",
				"I want to learn about APIs",
				"tell me about TCP/IP",
				"what is the relationship between TCP and HTTP",
				"I want to know about data",
				"transport layer security",
			},
		},
	}
}
