package catalog

import (
	"time"

	"github.com/alexanderramin/gatetrack/internal/domain"
)

// GATESeason places the built-in plan: Nov/Dec fall in 2025, Jan/Feb in 2026.
var GATESeason = domain.Season{StartYear: 2025, StartMonth: time.November}

// GATE returns the built-in 70-day GATE CSE plan.
func GATE() *Catalog {
	return New("GATE CSE Master Plan", GATESeason, gateSchedule(), gateRoutine(), gateAddOns(), gateTips())
}

func gateSchedule() []domain.ScheduleEntry {
	testDay := domain.Ptr(true)
	return []domain.ScheduleEntry{
		// Phase 1
		{
			ID:        "p1-c-lang",
			Phase:     1,
			DateRange: "29 Nov - 2 Dec",
			Subject:   "C Programming",
			Focus:     "FULL (Fast Mode)",
			Tasks: []string{
				"Pointers",
				"Arrays & Strings",
				"Functions",
				"Structures",
				"Storage Classes",
				"File Handling",
				"Daily: 3 hrs Lectures + 20 MCQs",
				"30 Nov: Small Test 1 (Basics + Pointers)",
			},
		},
		{
			ID:        "p1-dsa-1",
			Phase:     1,
			DateRange: "3 Dec - 6 Dec",
			Subject:   "DSA (Part 1)",
			Focus:     "FULL",
			Tasks: []string{
				"3 Dec: Complexity + Arrays",
				"4 Dec: Linked Lists",
				"5 Dec: Stack + Queue",
				"6 Dec: Trees",
				"Daily: 3-4 hrs DSA + 20-30 PYQs",
			},
		},
		{
			ID:        "p1-dsa-2",
			Phase:     1,
			DateRange: "7 Dec - 10 Dec",
			Subject:   "DSA (Part 2)",
			Focus:     "FULL",
			Tasks: []string{
				"7 Dec: BST + Heap + Small Test 2",
				"8 Dec: Graphs (BFS/DFS)",
				"9 Dec: Dijkstra + MST",
				"10 Dec: DP Basics + DSA Full Subject Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p1-apt-1",
			Phase:     1,
			DateRange: "11 Dec - 15 Dec",
			Subject:   "Aptitude (Part 1)",
			Focus:     "FULL",
			Tasks: []string{
				"11 Dec: Series",
				"12 Dec: Percentages",
				"13 Dec: Ratios",
				"14 Dec: SI/CI + Small Test 3",
				"15 Dec: Time Speed Distance",
			},
		},
		{
			ID:        "p1-apt-2",
			Phase:     1,
			DateRange: "16 Dec - 20 Dec",
			Subject:   "Aptitude (Part 2)",
			Focus:     "FULL",
			Tasks: []string{
				"16 Dec: Time & Work",
				"17 Dec: Data Interpretation",
				"18 Dec: Logical Reasoning",
				"19 Dec: Venn Diagrams",
				"20 Dec: Revision + PYQs + Aptitude Full Test",
			},
			IsTestDay: testDay,
		},

		// Phase 2
		{
			ID:        "p2-os",
			Phase:     2,
			DateRange: "21 Dec - 27 Dec",
			Subject:   "Operating Systems",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"CPU Scheduling",
				"Deadlocks",
				"Semaphores",
				"Paging & Virtual Memory",
				"21 Dec: Small Test 4 (Scheduling + Deadlock)",
				"27 Dec: OS Important Topics Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p2-cn",
			Phase:     2,
			DateRange: "28 Dec - 3 Jan",
			Subject:   "Computer Networks",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"IP & Subnetting",
				"TCP vs UDP",
				"Congestion Control",
				"CRC & ARQ (Stop & Wait, SR, GBN)",
				"Routing (DV, LS)",
				"28 Dec: Small Test 5 (IP + Subnetting)",
				"3 Jan: CN Important Topics Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p2-dbms",
			Phase:     2,
			DateRange: "4 Jan - 7 Jan",
			Subject:   "DBMS",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"FDs & Normalization",
				"Joins",
				"Transactions",
				"Indexing",
				"5 Jan: Small Test 6 (FD + BCNF)",
				"7 Jan: DBMS Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p2-toc",
			Phase:     2,
			DateRange: "8 Jan - 12 Jan",
			Subject:   "Theory of Computation",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"Regular Languages & DFA/NFA",
				"CFG",
				"PDA (Concept only)",
				"Pumping Lemma",
				"11 Jan: Small Test 7 (DFA + CFG)",
				"12 Jan: TOC Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p2-dl",
			Phase:     2,
			DateRange: "13 Jan - 17 Jan",
			Subject:   "Digital Logic",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"Boolean Algebra & K-Map",
				"Combinational Circuits",
				"Sequential Circuits",
				"Counters",
				"13 Jan: Small Test 8 (K-Map)",
				"17 Jan: DL Test",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p2-compiler",
			Phase:     2,
			DateRange: "18 Jan - 20 Jan",
			Subject:   "Compiler Design",
			Focus:     "IMPORTANT TOPICS ONLY",
			Tasks: []string{
				"Lexical Analysis",
				"Parsing",
				"TAC",
				"Runtime Environment",
				"19 Jan: Compiler Small Test",
				"20 Jan: Compiler Test",
			},
			IsTestDay: testDay,
		},

		// Phase 3
		{
			ID:        "p3-mock-1",
			Phase:     3,
			DateRange: "21 Jan - 23 Jan",
			Subject:   "Mock Phase Start",
			Focus:     "MOCK TESTS",
			Tasks: []string{
				"21 Jan: Full Mock 1",
				"22 Jan: Analysis (Deep Dive)",
				"23 Jan: Full Mock 2",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p3-mock-2",
			Phase:     3,
			DateRange: "24 Jan - 27 Jan",
			Subject:   "Mocks & Revision",
			Focus:     "MOCK TESTS",
			Tasks: []string{
				"24 Jan: Revision",
				"25 Jan: Full Mock 3",
				"26 Jan: Revision",
				"27 Jan: Full Mock 4",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p3-mock-3",
			Phase:     3,
			DateRange: "28 Jan - 31 Jan",
			Subject:   "Subject Revisions",
			Focus:     "MOCK TESTS",
			Tasks: []string{
				"28 Jan: DSA + OS + CN Revision",
				"29 Jan: Full Mock 5",
				"30 Jan: DBMS + TOC + DL Revision",
				"31 Jan: Full Mock 6",
			},
			IsTestDay: testDay,
		},
		{
			ID:        "p3-final",
			Phase:     3,
			DateRange: "1 Feb - 8 Feb",
			Subject:   "Final Stretch",
			Focus:     "CONFIDENCE",
			Tasks: []string{
				"1 Feb: Maths + Aptitude Revision",
				"2 Feb: Full Mock 7",
				"3 Feb: Light Revision",
				"4 Feb: Full Mock 8",
				"5 Feb: Formula Sheet Revision",
				"6 Feb: Very Light Revision",
				"7 Feb: Rest + Confidence",
				"8 Feb: GATE EXAM DAY (AIR 1 Incoming)",
			},
			IsTestDay: testDay,
		},
	}
}

func gateRoutine() []domain.RoutineItem {
	details := func(s string) *string { return &s }
	return []domain.RoutineItem{
		{ID: "dr-1", Time: "5:00 - 5:20 AM", Task: "Wake up, freshen up, walk", Category: domain.CategoryMorning, Duration: 0.3, Details: details("Small walk to wake up body")},
		{ID: "dr-2", Time: "5:20 - 5:30 AM", Task: "Review previous mistakes", Category: domain.CategoryMorning, Duration: 0.2, Details: details("10 min review of mistake notebook")},
		{ID: "dr-3", Time: "5:30 - 7:30 AM", Task: "Main Subject (Core Study)", Category: domain.CategoryMorning, Duration: 2.0, Details: details("Focus on toughest chapter of the day"), FallbackTask: details("Study Session (General)")},
		{ID: "dr-4", Time: "7:45 - 9:15 AM", Task: "Continue Main Subject + PYQs", Category: domain.CategoryMorning, Duration: 1.5, Details: details("Solve at least 20 PYQs now")},
		{ID: "dr-5", Time: "10:00 - 12:00 PM", Task: "Topic Revision + PYQs", Category: domain.CategoryMidDay, Duration: 2.0, Details: details("20-25 Questions Target"), SubjectTask: details("Main Subject Revision + PYQs"), FallbackTask: details("General Revision + PYQs")},
		{ID: "dr-6", Time: "12:00 - 1:00 PM", Task: "DSA Revision", Category: domain.CategoryMidDay, Duration: 1.0, Details: details("10-20 Questions (Arrays/Linked Lists)")},
		{ID: "dr-7", Time: "4:00 - 5:00 PM", Task: "Engineering Maths", Category: domain.CategoryEvening, Duration: 1.0, Details: details("1 hour daily is mandatory")},
		{ID: "dr-8", Time: "5:00 - 6:00 PM", Task: "Aptitude Practice", Category: domain.CategoryEvening, Duration: 1.0, Details: details("20-30 mins practice + quizzes")},
		{ID: "dr-9", Time: "6:00 - 7:00 PM", Task: "Watch Important Topic Videos", Category: domain.CategoryEvening, Duration: 1.0, Details: details("OS / CN / DBMS / DL / TOC")},
		{ID: "dr-10", Time: "8:00 - 9:00 PM", Task: "Revision: Formulas + Notes", Category: domain.CategoryNight, Duration: 1.0, Details: details("Fast revision of short notes")},
		{ID: "dr-11", Time: "9:00 - 10:00 PM", Task: "Test Review / Mistake Log", Category: domain.CategoryNight, Duration: 1.0, Details: details("Fix mistakes of the day")},
	}
}

func gateAddOns() []domain.AddOn {
	icon := func(s string) *string { return &s }
	return []domain.AddOn{
		{ID: "da-1", Label: "20 Minute Walk", Icon: icon("🏃")},
		{ID: "da-2", Label: "Drink Water Every 1 Hr", Icon: icon("💧")},
		{ID: "da-3", Label: "No Phone Until 10 PM", Icon: icon("📵")},
		{ID: "da-4", Label: "Sleep 7 Hours", Icon: icon("😴")},
		{ID: "da-5", Label: "Updated Mistake Notebook", Icon: icon("📓")},
	}
}

func gateTips() []domain.Tip {
	highlight := domain.Ptr(true)
	return []domain.Tip{
		{
			Title:     "10 Hours ≠ Success",
			Content:   "Correct 10 Hours = Success. Follow the split: 4h Core, 2h DSA/PYQ, 1h Apt, 1h Math, 1h Analysis, 1h Revision.",
			Highlight: highlight,
		},
		{
			Title:   "The Golden Rule",
			Content: "Do NOT watch all lectures. Full lectures only for C, DSA, Aptitude. Important topics only for others.",
		},
		{
			Title:   "Mistake Notebook",
			Content: "Every wrong question goes here. 'Why did I make this mistake?' Revise this before every mock.",
		},
		{
			Title:     "Last 20 Days",
			Content:   "NO NEW TOPICS after Jan 30. Pure revision + mocks only.",
			Highlight: highlight,
		},
		{
			Title:   "Consistency",
			Content: "Motivation fails after 3 days. Routine never fails. Just show up.",
		},
	}
}
