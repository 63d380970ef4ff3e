package transcript

// Identifiers of the built-in transcripts.
const (
	CircuitDesignID = "circuit-design-fundamentals"
	CircuitGuideID  = "kHbXbK7S188"
)

const circuitGuideDuration = 1800

// guideSegment is the topic-tagged form the guide is authored in; end
// times are derived from the next segment start.
type guideSegment struct {
	start  float64
	text   string
	topics []string
}

var circuitGuideSegments = []guideSegment{
	{
		start:  0,
		text:   "Welcome to this comprehensive guide on circuit design for electricians. Today we'll cover everything from basic electrical theory to practical circuit troubleshooting. Whether you're just starting out or need a refresher, this video will help you understand the fundamentals.",
		topics: []string{"introduction", "overview", "electrical theory"},
	},
	{
		start:  25,
		text:   "Before we dive into circuit design, let's review the basic principles of electricity. Electricity is the flow of electrons through a conductor, and understanding this flow is crucial for any electrical work.",
		topics: []string{"electricity basics", "electron flow", "conductors"},
	},
	{
		start:  55,
		text:   "The three fundamental quantities in electrical circuits are voltage, current, and resistance. Voltage is the electrical pressure that pushes electrons through a circuit, measured in volts. Current is the actual flow of electrons, measured in amperes or amps.",
		topics: []string{"voltage", "current", "resistance", "electrical quantities", "volts", "amperes"},
	},
	{
		start:  85,
		text:   "Resistance opposes the flow of current and is measured in ohms. Every component in a circuit has some resistance, and this resistance determines how much current will flow when voltage is applied.",
		topics: []string{"resistance", "ohms", "current flow", "electrical components"},
	},
	{
		start:  115,
		text:   "This brings us to Ohm's Law, the most important equation in electrical work. Ohm's Law states that voltage equals current times resistance, or V equals I times R. This simple equation allows us to calculate any unknown quantity when we know the other two.",
		topics: []string{"ohms law", "voltage calculation", "current calculation", "resistance calculation", "electrical equations"},
	},
	{
		start:  145,
		text:   "For example, if we have a 120-volt circuit with a 12-ohm load, we can calculate the current by dividing voltage by resistance: 120 volts divided by 12 ohms equals 10 amperes. This is essential for determining proper wire sizing and circuit protection.",
		topics: []string{"ohms law", "current calculation", "wire sizing", "circuit protection", "practical examples"},
	},
	{
		start:  175,
		text:   "Now let's look at circuit symbols and diagrams. Every electrical component has a standardized symbol used in circuit diagrams. Resistors are shown as zigzag lines, capacitors as parallel lines, and switches as breaks in the line that can be closed.",
		topics: []string{"circuit symbols", "electrical diagrams", "resistors", "capacitors", "switches", "schematic reading"},
	},
	{
		start:  205,
		text:   "Understanding these symbols is crucial for reading electrical schematics. A good electrician must be able to interpret circuit diagrams quickly and accurately to troubleshoot problems and install new circuits properly.",
		topics: []string{"schematic reading", "circuit diagrams", "troubleshooting", "electrical installation"},
	},
	{
		start:  235,
		text:   "There are two basic ways to connect components in circuits: series and parallel. In a series circuit, components are connected end-to-end, so current flows through each component in sequence.",
		topics: []string{"series circuits", "parallel circuits", "circuit connections", "current flow"},
	},
	{
		start:  265,
		text:   "In series circuits, the current is the same through all components, but the voltage divides across each component based on its resistance. If one component fails in a series circuit, the entire circuit stops working.",
		topics: []string{"series circuits", "voltage division", "current characteristics", "circuit failure"},
	},
	{
		start:  295,
		text:   "Parallel circuits connect components side-by-side, creating multiple paths for current. In parallel circuits, voltage is the same across all components, but current divides based on the resistance of each branch.",
		topics: []string{"parallel circuits", "multiple paths", "voltage characteristics", "current division"},
	},
	{
		start:  325,
		text:   "Most residential and commercial electrical systems use parallel circuits because if one component fails, the others continue to operate. This is why when one light bulb burns out, the others stay on.",
		topics: []string{"parallel circuits", "residential wiring", "commercial wiring", "circuit reliability"},
	},
	{
		start:  355,
		text:   "Let's discuss power calculations. Power is the rate at which electrical energy is consumed and is measured in watts. The basic power formula is P equals V times I, or power equals voltage times current.",
		topics: []string{"power calculation", "watts", "electrical energy", "power formulas"},
	},
	{
		start:  385,
		text:   "We can also calculate power using Ohm's Law variations: P equals I squared times R, or P equals V squared divided by R. These formulas are essential for determining circuit capacity and component ratings.",
		topics: []string{"power calculation", "ohms law variations", "circuit capacity", "component ratings"},
	},
	{
		start:  415,
		text:   "Now let's look at common electrical components. Resistors limit current flow and are used in control circuits and electronic devices. They're color-coded to indicate their resistance value and tolerance.",
		topics: []string{"resistors", "electrical components", "current limiting", "color coding", "resistance values"},
	},
	{
		start:  445,
		text:   "Capacitors store electrical energy temporarily and are used in motor starting circuits and power factor correction. They're rated by capacitance in farads and maximum working voltage.",
		topics: []string{"capacitors", "energy storage", "motor starting", "power factor correction", "capacitance", "farads"},
	},
	{
		start:  475,
		text:   "Inductors, or coils, oppose changes in current and are found in motors, transformers, and ballasts. They store energy in a magnetic field rather than an electric field like capacitors.",
		topics: []string{"inductors", "coils", "motors", "transformers", "ballasts", "magnetic field"},
	},
	{
		start:  505,
		text:   "Diodes allow current to flow in only one direction and are used in rectifier circuits and protection circuits. LEDs are special diodes that emit light when current flows through them.",
		topics: []string{"diodes", "rectifiers", "protection circuits", "LEDs", "current direction"},
	},
	{
		start:  535,
		text:   "Switches control current flow by opening and closing circuits. There are many types: single-pole single-throw, double-pole double-throw, momentary, and maintained contact switches.",
		topics: []string{"switches", "current control", "SPST", "DPDT", "momentary switches", "maintained contact"},
	},
	{
		start:  565,
		text:   "Circuit protection is critical for safety. Fuses and circuit breakers protect circuits from overcurrent conditions. Fuses are one-time devices that must be replaced, while breakers can be reset.",
		topics: []string{"circuit protection", "safety", "fuses", "circuit breakers", "overcurrent protection"},
	},
	{
		start:  595,
		text:   "Ground Fault Circuit Interrupters, or GFCIs, protect people from electrical shock by detecting current imbalances between hot and neutral conductors. They're required in wet locations like bathrooms and kitchens.",
		topics: []string{"GFCI", "electrical shock protection", "current imbalance", "wet locations", "safety requirements"},
	},
	{
		start:  625,
		text:   "Arc Fault Circuit Interrupters, or AFCIs, protect against electrical fires by detecting dangerous arcing conditions in circuits. They're now required in most residential bedroom circuits.",
		topics: []string{"AFCI", "electrical fire protection", "arcing conditions", "residential requirements"},
	},
	{
		start:  655,
		text:   "When designing circuits, we must consider load calculations. Total up all the loads that will be connected to determine the required wire size and circuit protection ratings.",
		topics: []string{"circuit design", "load calculations", "wire sizing", "circuit protection ratings"},
	},
	{
		start:  685,
		text:   "Wire sizing is based on current-carrying capacity, or ampacity. The National Electrical Code provides tables showing the maximum current each wire size can safely carry under various conditions.",
		topics: []string{"wire sizing", "ampacity", "current carrying capacity", "National Electrical Code", "NEC tables"},
	},
	{
		start:  715,
		text:   "Voltage drop is another important consideration. Long wire runs or undersized conductors can cause voltage drop, resulting in poor performance of connected equipment.",
		topics: []string{"voltage drop", "wire runs", "conductor sizing", "equipment performance"},
	},
	{
		start:  745,
		text:   "To calculate voltage drop, use the formula: VD equals 2 times K times I times L divided by the circular mil area, where K is the conductor material constant, I is current, and L is length.",
		topics: []string{"voltage drop calculation", "conductor material", "current", "wire length", "circular mils"},
	},
	{
		start:  775,
		text:   "Now let's discuss troubleshooting techniques. When a circuit isn't working, start with visual inspection. Look for obvious problems like loose connections, burned components, or damaged wires.",
		topics: []string{"troubleshooting", "visual inspection", "loose connections", "burned components", "damaged wires"},
	},
	{
		start:  805,
		text:   "Use a multimeter to measure voltage, current, and resistance. Always test for voltage before working on any circuit, and use proper lockout/tagout procedures to ensure safety.",
		topics: []string{"multimeter", "voltage testing", "current measurement", "resistance testing", "lockout tagout", "safety procedures"},
	},
	{
		start:  835,
		text:   "When measuring resistance, always turn off power to the circuit first. Resistance measurements must be taken with no voltage present, or you'll get inaccurate readings and potentially damage your meter.",
		topics: []string{"resistance measurement", "power isolation", "multimeter safety", "accurate readings"},
	},
	{
		start:  865,
		text:   "For current measurements, you typically use a clamp meter around one conductor. This measures current without breaking the circuit. Be sure to clamp around only one conductor, not multiple conductors together.",
		topics: []string{"current measurement", "clamp meter", "circuit testing", "conductor measurement"},
	},
	{
		start:  895,
		text:   "Continuity testing checks if current can flow through a circuit or component. Set your meter to the continuity or ohms function and touch the probes to both ends of the circuit path.",
		topics: []string{"continuity testing", "circuit testing", "ohms function", "circuit path"},
	},
	{
		start:  925,
		text:   "Insulation testing uses a megohmmeter to check the insulation between conductors and ground. This is important for motor testing and cable testing in industrial applications.",
		topics: []string{"insulation testing", "megohmmeter", "conductor insulation", "motor testing", "cable testing", "industrial applications"},
	},
	{
		start:  955,
		text:   "Three-phase power is common in commercial and industrial settings. In three-phase systems, power is delivered through three conductors, each 120 degrees out of phase with the others.",
		topics: []string{"three phase power", "commercial applications", "industrial applications", "phase relationships"},
	},
	{
		start:  985,
		text:   "Three-phase power calculations are different from single-phase. For three-phase power, P equals the square root of 3 times voltage times current times power factor, or approximately 1.732 times V times I times PF.",
		topics: []string{"three phase calculations", "power factor", "three phase power formulas", "electrical calculations"},
	},
	{
		start:  1015,
		text:   "Power factor is the ratio of real power to apparent power and is important in AC circuits with reactive components like motors and transformers. Poor power factor can result in higher energy costs.",
		topics: []string{"power factor", "real power", "apparent power", "reactive components", "energy costs"},
	},
	{
		start:  1045,
		text:   "Transformers change voltage levels in electrical systems. They work on the principle of electromagnetic induction and are essential for power distribution from generation to end users.",
		topics: []string{"transformers", "voltage transformation", "electromagnetic induction", "power distribution"},
	},
	{
		start:  1075,
		text:   "Transformer calculations use the turns ratio: the primary voltage divided by secondary voltage equals the primary turns divided by secondary turns. Current relationships are inverse to voltage.",
		topics: []string{"transformer calculations", "turns ratio", "voltage relationships", "current relationships"},
	},
	{
		start:  1105,
		text:   "Motor control circuits are essential in industrial applications. They typically include contactors for switching power, overload relays for protection, and control circuits for operation.",
		topics: []string{"motor control", "contactors", "overload relays", "control circuits", "industrial applications"},
	},
	{
		start:  1135,
		text:   "Start-stop circuits use momentary pushbuttons and holding contacts to control motor operation. The start button energizes the contactor, and the holding contact keeps it energized until the stop button is pressed.",
		topics: []string{"start stop circuits", "pushbuttons", "holding contacts", "contactor control"},
	},
	{
		start:  1165,
		text:   "Safety is paramount in electrical work. Always follow proper lockout/tagout procedures, use appropriate PPE, and test circuits before working on them. Remember: electricity is invisible and unforgiving.",
		topics: []string{"electrical safety", "lockout tagout", "PPE", "circuit testing", "safety procedures"},
	},
	{
		start:  1195,
		text:   "Code compliance is also crucial. The National Electrical Code is updated every three years, and local codes may have additional requirements. Stay current with code changes to ensure safe, legal installations.",
		topics: []string{"code compliance", "National Electrical Code", "NEC updates", "local codes", "legal requirements"},
	},
	{
		start:  1225,
		text:   "When installing new circuits, always use proper junction boxes, secure all connections, and ensure adequate wire fill ratios. Poor installation practices can lead to failures and safety hazards.",
		topics: []string{"circuit installation", "junction boxes", "wire connections", "wire fill ratios", "installation practices"},
	},
	{
		start:  1255,
		text:   "Grounding and bonding are critical for safety. The grounding system provides a path for fault current to flow, allowing circuit protection devices to operate and clear faults quickly.",
		topics: []string{"grounding", "bonding", "fault current", "circuit protection", "electrical safety"},
	},
	{
		start:  1285,
		text:   "Equipment grounding conductors connect metal enclosures to the grounding system. This ensures that any fault to the enclosure will create a path for current to flow and trip the circuit breaker.",
		topics: []string{"equipment grounding", "grounding conductors", "metal enclosures", "fault protection"},
	},
	{
		start:  1315,
		text:   "Neutral and grounding conductors serve different purposes and should never be connected together except at the service entrance. This separation prevents dangerous neutral current on equipment grounds.",
		topics: []string{"neutral conductors", "grounding conductors", "service entrance", "neutral current", "safety"},
	},
	{
		start:  1345,
		text:   "Energy efficiency is becoming increasingly important. LED lighting, high-efficiency motors, and smart controls can significantly reduce energy consumption in electrical systems.",
		topics: []string{"energy efficiency", "LED lighting", "high efficiency motors", "smart controls", "energy consumption"},
	},
	{
		start:  1375,
		text:   "Smart electrical systems incorporate automation and monitoring capabilities. These systems can optimize energy use, provide remote monitoring, and integrate with building management systems.",
		topics: []string{"smart systems", "automation", "remote monitoring", "building management", "system integration"},
	},
	{
		start:  1405,
		text:   "As technology advances, electricians must stay current with new products and techniques. Renewable energy systems, electric vehicle charging, and energy storage are growing areas in the electrical field.",
		topics: []string{"renewable energy", "electric vehicle charging", "energy storage", "new technology", "continuing education"},
	},
	{
		start:  1435,
		text:   "Continuing education is essential for career growth. Many states require continuing education for license renewal, and staying current with technology and code changes is crucial for success.",
		topics: []string{"continuing education", "license renewal", "career growth", "technology updates"},
	},
	{
		start:  1465,
		text:   "In summary, successful circuit design requires understanding basic electrical theory, proper application of Ohm's Law, knowledge of components and their characteristics, and adherence to safety and code requirements.",
		topics: []string{"circuit design summary", "electrical theory", "ohms law", "component knowledge", "safety", "code requirements"},
	},
	{
		start:  1495,
		text:   "Remember to always prioritize safety, use proper tools and techniques, and never hesitate to consult references or ask for help when needed. The electrical field is constantly evolving, and there's always more to learn.",
		topics: []string{"safety priority", "proper tools", "continuous learning", "professional development"},
	},
	{
		start:  1525,
		text:   "Practice these concepts regularly, and don't be afraid to work through calculations and examples. The more you practice, the more confident and competent you'll become as an electrician.",
		topics: []string{"practice", "calculations", "skill development", "confidence building"},
	},
	{
		start:  1555,
		text:   "Thank you for watching this comprehensive guide to circuit design. Keep studying, stay safe, and remember that mastering electrical work takes time and dedication. Good luck in your electrical career!",
		topics: []string{"conclusion", "career advice", "safety reminder", "professional development"},
	},
}
