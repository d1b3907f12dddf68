package ascii

// Logo lines carry no color codes. Theme.Colorized applies the accent.

// defaultLogo is the four-pane window used when no theme matches.
var defaultLogo = []string{
	"                    ....,,:;+ccllll",
	"      ...,,+:;  cllllllllllllllllll",
	",cclllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"llllllllllllll  lllllllllllllllllll",
	"`'ccllllllllll  lllllllllllllllllll",
	"       `' \\*::  :ccllllllllllllllll",
	"                       ````''*::cll",
	"                                 ``",
}

// archLogo is the Arch Linux triangle.
var archLogo = []string{
	"                   -`",
	"                  .o+`",
	"                 `ooo/",
	"                `+oooo:",
	"               `+oooooo:",
	"               -+oooooo+:",
	"             `/:-:++oooo+:",
	"            `/++++/+++++++:",
	"           `/++++++++++++++:",
	"          `/+++ooooooooooooo/`",
	"         ./ooosssso++osssssso+`",
	"        .oossssso-````/ossssss+`",
	"       -osssssso.      :ssssssso.",
	"      :osssssss/        osssso+++.",
	"     /ossssssss/        +ssssooo/-",
	"   `/ossssso+/:-        -:/+osssso+-",
	"  `+sso+:-`                 `.-/+oso:",
	" `++:.                           `-/+/",
	" .`                                 `/",
}

// rosaLogo is the ROSA Linux ring.
var rosaLogo = []string{
	"           ROSAROSAROSAROSAR",
	"        ROSA               AROS",
	"      ROS   SAROSAROSAROSAR   AROS",
	"    RO   ROSAROSAROSAROSAROSAR   RO",
	"  ARO  AROSAROSAROSARO      AROS  ROS",
	" ARO  ROSAROS         OSAR   ROSA  ROS",
	" RO  AROSA   ROSAROSAROSA    ROSAR  RO",
	"RO  ROSAR  ROSAROSAROSAR  R  ROSARO  RO",
	"RO  ROSA  AROSAROSAROSA  AR  ROSARO  AR",
	"RO AROS  ROSAROSAROSA   ROS  AROSARO AR",
	"RO AROS  ROSAROSARO   ROSARO  ROSARO AR",
	"RO  ROS  AROSAROS   ROSAROSA AROSAR  AR",
	"RO  ROSA  ROS     ROSAROSAR  ROSARO  RO",
	" RO  ROS     AROSAROSAROSA  ROSARO  AR",
	" ARO  ROSA   ROSAROSAROS   AROSAR  ARO",
	"  ARO  OROSA      R      ROSAROS  ROS",
	"    RO   AROSAROS   AROSAROSAR   RO",
	"     AROS   AROSAROSAROSARO   AROS",
	"        ROSA               SARO",
	"           ROSAROSAROSAROSAR",
}

// redhatLogo is the Red Hat fedora.
var redhatLogo = []string{
	"           .MMM..:MMMMMMM",
	"          MMMMMMMMMMMMMMMMMM",
	"          MMMMMMMMMMMMMMMMMMMM.",
	"         MMMMMMMMMMMMMMMMMMMMMM",
	"        ,MMMMMMMMMMMMMMMMMMMMMM:",
	"        MMMMMMMMMMMMMMMMMMMMMMMM",
	"  .MMMM'  MMMMMMMMMMMMMMMMMMMMMM",
	" MMMMMM    `MMMMMMMMMMMMMMMMMMMM.",
	"MMMMMMMM      MMMMMMMMMMMMMMMMMM .",
	"MMMMMMMMM.       `MMMMMMMMMMMMM' MM.",
	"MMMMMMMMMMM.                     MMMM",
	"`MMMMMMMMMMMMM.                 ,MMMMM.",
	" `MMMMMMMMMMMMMMMMM.          ,MMMMMMMM.",
	"    MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM",
	"      MMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMMM:",
	"         MMMMMMMMMMMMMMMMMMMMMMMMMMMMMM",
	"            `MMMMMMMMMMMMMMMMMMMMMMMM:",
	"                ``MMMMMMMMMMMMMMMMM'",
}

// manjaroLogo is the Manjaro block mark.
var manjaroLogo = []string{
	"██████████████████  ████████",
	"██████████████████  ████████",
	"██████████████████  ████████",
	"██████████████████  ████████",
	"████████            ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
	"████████  ████████  ████████",
}

// blankLogo keeps the info column at its usual offset without drawing anything.
// It is as tall as the info block so no fact line is dropped.
var blankLogo = []string{
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
	"",
}
