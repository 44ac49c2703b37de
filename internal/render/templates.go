package render

import "text/template"

const documentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
    <title>{{.Title}}</title>
    <meta name="generator" content="{{.Generator}}"/>
    <meta http-equiv="Content-Type" content="text/html; charset=UTF-8"/>

    <link href="css/report.css" rel="stylesheet"/>
    <script type="text/javascript" src="js/chart.js"></script>

    {{.Stylesheet}}

</head>
<body>
    <script type="text/javascript"><!--
    /* level - 0:summary; 1:failed; 2:all */
    function showCase(level) {
        var trs = document.getElementsByTagName("tr");
        for (var i = 0; i < trs.length; i++) {
            var tr = trs[i];
            var prefix = tr.id.substr(0, 2);
            if (prefix == 'ft') {
                tr.className = level < 1 ? 'hiddenRow' : '';
            }
            if (prefix == 'pt') {
                tr.className = level > 1 ? '' : 'hiddenRow';
            }
        }
    }

    function showClassDetail(cid, count) {
        var ids = [];
        var toHide = 1;
        for (var i = 0; i < count; i++) {
            var tid = 't' + cid.substr(1) + '.' + (i + 1);
            var tr = document.getElementById('f' + tid);
            if (!tr) {
                tr = document.getElementById('p' + tid);
            }
            if (!tr) {
                continue;
            }
            ids.push(tr.id);
            if (tr.className) {
                toHide = 0;
            }
        }
        for (var j = 0; j < ids.length; j++) {
            if (toHide) {
                document.getElementById('div_' + ids[j]).style.display = 'none';
                document.getElementById(ids[j]).className = 'hiddenRow';
            } else {
                document.getElementById(ids[j]).className = '';
            }
        }
    }

    function showTestDetail(divId) {
        var div = document.getElementById(divId);
        div.style.display = div.style.display != 'block' ? 'block' : 'none';
    }
    --></script>

    <div id="div_base">
        {{.Heading}}
        {{.Report}}
        {{.Ending}}
        {{.Chart}}
    </div>
</body>
</html>
`

const stylesheet = `
<style type="text/css" media="screen">
    body        { font-family: "Microsoft YaHei", Consolas, arial, sans-serif; font-size: 80%; }
    table       { font-size: 100%; }
    pre         { white-space: pre-wrap; word-wrap: break-word; }

    h1 { font-size: 16pt; color: gray; }
    .heading { margin-top: 0ex; margin-bottom: 1ex; }
    .heading .attribute { margin-top: 1ex; margin-bottom: 0; }
    .heading .description { margin-top: 2ex; margin-bottom: 3ex; }

    a.popup_link:hover { color: red; }
    .popup_window {
        display: none;
        position: relative;
        left: 0px;
        top: 0px;
        padding: 10px;
        font-family: "Lucida Console", "Courier New", Courier, monospace;
        text-align: left;
        font-size: 8pt;
    }

    #show_detail_line { margin-top: 3ex; margin-bottom: 1ex; }
    #result_table { width: 99%; }
    #header_row { font-weight: bold; color: #303641; background-color: #ebebeb; }
    #total_row  { font-weight: bold; }
    .passClass  { background-color: #bdedbc; }
    .failClass  { background-color: #ffefa4; }
    .errorClass { background-color: #ffc9c9; }
    .passCase   { color: #6c6; }
    .failCase   { color: #FF6600; font-weight: bold; }
    .errorCase  { color: #c00; font-weight: bold; }
    .unknownCase { color: gray; font-style: italic; }
    .hiddenRow  { display: none; }
    .testcase   { margin-left: 2em; }

    #div_base {
        position: absolute;
        top: 0%;
        left: 5%;
        right: 5%;
        width: auto;
        height: auto;
        margin: -15px 0 0 0;
    }
</style>
`

const headingTemplate = `
    <div class='page-header'>
        <h1>{{.Title}}</h1>
    {{range .Attributes}}<p class='attribute'><strong>{{.Name}}:</strong> {{.Value}}</p>
    {{end}}
    </div>
    <div style="float: left;width:50%;"><p class='description'>{{.Description}}</p></div>
    <div id="chart" style="width:50%;height:400px;float:left;"></div>
`

const reportTemplate = `
    <div class="btn-group btn-group-sm">
        <button class="btn btn-default" onclick='javascript:showCase(0)'>{{.Labels.ShowSummary}}</button>
        <button class="btn btn-default" onclick='javascript:showCase(1)'>{{.Labels.ShowFailed}}</button>
        <button class="btn btn-default" onclick='javascript:showCase(2)'>{{.Labels.ShowAll}}</button>
    </div>
    <p></p>
    <table id='result_table' class="table table-bordered">
        <colgroup>
            <col align='left' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
            <col align='right' />
        </colgroup>
        <tr id='header_row'>
            <td>{{.Labels.ColumnName}}</td>
            <td>{{.Labels.ColumnTotal}}</td>
            <td>{{.Labels.ColumnPass}}</td>
            <td>{{.Labels.ColumnFail}}</td>
            <td>{{.Labels.ColumnError}}</td>
            <td>{{.Labels.ColumnView}}</td>
        </tr>
{{range .Suites}}
    <tr class='{{.Class}}'>
        <td>{{.Text}}</td>
        <td>{{.Total}}</td>
        <td>{{.Pass}}</td>
        <td>{{.Fail}}</td>
        <td>{{.Error}}</td>
        <td><a href="javascript:showClassDetail('{{.RefID}}',{{.Rows}})">{{$.Labels.Detail}}</a></td>
    </tr>
{{range .Cases}}
<tr id='{{.Tag}}' class='hiddenRow'>
    <td class='{{.Class}}'><div class='testcase'>{{.Text}}</div></td>
    <td colspan='5' align='center'>
    <a class="popup_link" onfocus='this.blur();' href="javascript:showTestDetail('div_{{.Tag}}')" >
        {{.Status}}</a>
    <div id='div_{{.Tag}}' class="popup_window">
        <pre>{{.Detail}}</pre>
    </div>
    </td>
</tr>
{{end}}{{end}}
        <tr id='total_row'>
            <td>{{.Labels.TotalRow}}</td>
            <td>{{.Total}}</td>
            <td>{{.Pass}}</td>
            <td>{{.Fail}}</td>
            <td>{{.Error}}</td>
            <td>&nbsp;</td>
        </tr>
    </table>
`

const endingMarkup = `<div id='ending'>&nbsp;</div>`

const chartTemplate = `
    <script type="text/javascript">
        ReportChart.pie(document.getElementById('chart'), {
            title: '{{.Title}}',
            colors: ['#95b75d', 'grey', '#b64645'],
            data: [
                {value: {{.Pass}}, name: '{{.PassName}}'},
                {value: {{.Fail}}, name: '{{.FailName}}'},
                {value: {{.Error}}, name: '{{.ErrorName}}'}
            ]
        });
    </script>
`

var templates = template.Must(template.New("document").Parse(documentTemplate))

func init() {
	template.Must(templates.New("heading").Parse(headingTemplate))
	template.Must(templates.New("report").Parse(reportTemplate))
	template.Must(templates.New("chart").Parse(chartTemplate))
}
